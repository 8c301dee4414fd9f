// Package timer реализует отложенные вызовы, привязанные к игровому времени.
// Планировщик продвигается только из игрового цикла, поэтому колбэки
// выполняются в том же потоке, что и остальная логика кадра.
package timer

import "sort"

// Handle идентификатор запланированной задачи. Ноль - недействительный handle.
type Handle uint64

type task struct {
	handle Handle
	owner  string
	due    float64
	fn     func()
}

// Scheduler очередь отложенных задач.
type Scheduler struct {
	now    float64
	next   Handle
	tasks  map[Handle]*task
	owners map[string]map[Handle]struct{}
}

// NewScheduler создаёт пустой планировщик.
func NewScheduler() *Scheduler {
	return &Scheduler{
		next:   1,
		tasks:  make(map[Handle]*task),
		owners: make(map[string]map[Handle]struct{}),
	}
}

// Now текущее время планировщика, секунды.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After планирует fn через delay секунд. owner группирует задачи для
// массовой отмены (например, ID комнаты); может быть пустым.
func (s *Scheduler) After(owner string, delay float64, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	h := s.next
	s.next++
	s.tasks[h] = &task{handle: h, owner: owner, due: s.now + delay, fn: fn}
	if owner != "" {
		if s.owners[owner] == nil {
			s.owners[owner] = make(map[Handle]struct{})
		}
		s.owners[owner][h] = struct{}{}
	}
	return h
}

// Cancel отменяет задачу. Возвращает false, если задача уже выполнена или отменена.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.tasks[h]
	if !ok {
		return false
	}
	s.remove(t)
	return true
}

// CancelOwner отменяет все задачи владельца и возвращает их число.
func (s *Scheduler) CancelOwner(owner string) int {
	handles := s.owners[owner]
	n := 0
	for h := range handles {
		if t, ok := s.tasks[h]; ok {
			s.remove(t)
			n++
		}
	}
	delete(s.owners, owner)
	return n
}

// Pending число ожидающих задач.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// PendingFor число ожидающих задач владельца.
func (s *Scheduler) PendingFor(owner string) int {
	return len(s.owners[owner])
}

// Remaining время до срабатывания задачи.
func (s *Scheduler) Remaining(h Handle) (float64, bool) {
	t, ok := s.tasks[h]
	if !ok {
		return 0, false
	}
	return t.due - s.now, true
}

// Update продвигает время и выполняет наступившие задачи в порядке срока.
// Задачи, запланированные из колбэков с нулевой задержкой, выполнятся
// в следующем Update.
func (s *Scheduler) Update(deltaTime float64) {
	s.now += deltaTime

	var due []*task
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].handle < due[j].handle
		}
		return due[i].due < due[j].due
	})

	for _, t := range due {
		// Колбэк предыдущей задачи мог отменить эту
		if _, ok := s.tasks[t.handle]; !ok {
			continue
		}
		s.remove(t)
		t.fn()
	}
}

func (s *Scheduler) remove(t *task) {
	delete(s.tasks, t.handle)
	if t.owner == "" {
		return
	}
	if set, ok := s.owners[t.owner]; ok {
		delete(set, t.handle)
		if len(set) == 0 {
			delete(s.owners, t.owner)
		}
	}
}
