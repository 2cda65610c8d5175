package stats

import "sync"

// Counters представляет процессные счётчики проверок номерных знаков.
// Хранятся только в памяти и обнуляются при перезапуске сервиса.
type Counters struct {
	mu      sync.Mutex
	total   int64
	valid   int64
	invalid int64
}

func NewCounters() *Counters {
	return &Counters{}
}

// Record учитывает одну классификацию: total и ровно один из
// valid/invalid увеличиваются под общей блокировкой.
func (c *Counters) Record(valid bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	if valid {
		c.valid++
		return
	}
	c.invalid++
}

// Snapshot содержит согласованный срез счётчиков на момент вызова.
type Snapshot struct {
	Total   int64
	Valid   int64
	Invalid int64
}

func (c *Counters) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		Total:   c.total,
		Valid:   c.valid,
		Invalid: c.invalid,
	}
}
