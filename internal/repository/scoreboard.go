package repository

import "sync"

const (
	PlayerOne = "player1"
	PlayerTwo = "player2"
)

// Scoreboard keeps running win counts for the lifetime of the process. Scores
// never survive a restart; the only storage is process memory.
type Scoreboard interface {
	Increment(playerID string)
	Get(playerID string) int
	Reset()
}

type memoryScoreboard struct {
	mu   sync.Mutex
	wins map[string]int
}

func NewMemoryScoreboard() Scoreboard {
	return &memoryScoreboard{
		wins: make(map[string]int),
	}
}

func (that *memoryScoreboard) Increment(playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.wins[playerID]++
}

func (that *memoryScoreboard) Get(playerID string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.wins[playerID]
}

func (that *memoryScoreboard) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.wins = make(map[string]int)
}
