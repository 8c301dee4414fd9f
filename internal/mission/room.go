package mission

import (
	"errors"
	"fmt"

	"nova-remains/internal/config"
	"nova-remains/internal/defs"
	"nova-remains/internal/event"
	"nova-remains/internal/logging"
	"nova-remains/internal/timer"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")
	ErrRoomBusy      = errors.New("room is not accepting changes")
	ErrNotHost       = errors.New("only the host can do this")
	ErrNotMember     = errors.New("not a member of the room")
	ErrAlreadyMember = errors.New("already in the room")
	ErrNotReady      = errors.New("not all members are ready")
)

// RoomStatus статус комнаты.
type RoomStatus int

const (
	RoomWaiting RoomStatus = iota
	RoomStarting
	RoomInProgress
	RoomCompleted
)

func (s RoomStatus) String() string {
	switch s {
	case RoomWaiting:
		return "waiting"
	case RoomStarting:
		return "starting"
	case RoomInProgress:
		return "in_progress"
	case RoomCompleted:
		return "completed"
	}
	return "unknown"
}

// Member участник комнаты: игрок или бот.
type Member struct {
	ID        string
	Name      string
	Character string
	Bot       bool
	Ready     bool
}

// Room локальная комната миссии.
type Room struct {
	ID        string
	MissionID string
	HostID    string
	Members   []Member
	Status    RoomStatus
}

func (r *Room) index(memberID string) int {
	for i, m := range r.Members {
		if m.ID == memberID {
			return i
		}
	}
	return -1
}

// AllReady все участники, кроме хоста, готовы.
func (r *Room) AllReady() bool {
	for _, m := range r.Members {
		if m.ID != r.HostID && !m.Ready {
			return false
		}
	}
	return true
}

// StatusData данные события RoomStatusChange.
type StatusData struct {
	RoomID string
	Status RoomStatus
}

// IDGenerator источник уникальных идентификаторов.
type IDGenerator interface {
	New() string
}

// Random источник случайных чисел для ботов.
type Random interface {
	Intn(n int) int
	Float64() float64
}

var botNames = []string{"Ronan", "Amy", "Jin", "Sieghart", "Mari", "Dio", "Zero", "Ley"}

// RoomManager создаёт комнаты, ведёт участников и запуск миссии.
// Отсчёт до старта идёт через timer.Scheduler и отменяется вместе с комнатой.
type RoomManager struct {
	rooms           map[string]*Room
	order           []string
	countdowns      map[string]timer.Handle
	scheduler       *timer.Scheduler
	eventDispatcher *event.Dispatcher
	ids             IDGenerator
	rng             Random
	onStart         func(room *Room)
}

func NewRoomManager(scheduler *timer.Scheduler, eventDispatcher *event.Dispatcher, ids IDGenerator, rng Random) *RoomManager {
	return &RoomManager{
		rooms:           make(map[string]*Room),
		countdowns:      make(map[string]timer.Handle),
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		ids:             ids,
		rng:             rng,
	}
}

// OnStart задаёт обработчик, вызываемый по окончании отсчёта.
func (m *RoomManager) OnStart(fn func(room *Room)) {
	m.onStart = fn
}

func timerOwner(roomID string) string {
	return "room:" + roomID
}

// Room возвращает комнату по ID.
func (m *RoomManager) Room(id string) (*Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return r, nil
}

// Rooms комнаты в порядке создания.
func (m *RoomManager) Rooms() []*Room {
	list := make([]*Room, 0, len(m.order))
	for _, id := range m.order {
		if r, ok := m.rooms[id]; ok {
			list = append(list, r)
		}
	}
	return list
}

// CreateRoom создаёт комнату для миссии; host становится хостом.
func (m *RoomManager) CreateRoom(missionID string, host Member) (*Room, error) {
	if _, ok := defs.MissionLibrary[missionID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissionNotFound, missionID)
	}
	if host.ID == "" {
		host.ID = m.ids.New()
	}
	host.Ready = true
	r := &Room{
		ID:        m.ids.New(),
		MissionID: missionID,
		HostID:    host.ID,
		Members:   []Member{host},
		Status:    RoomWaiting,
	}
	m.rooms[r.ID] = r
	m.order = append(m.order, r.ID)
	logging.Logger.Debug().Str("room", r.ID).Str("mission", missionID).Str("host", host.Name).Msg("room created")
	return r, nil
}

// Join добавляет участника в ожидающую комнату.
func (m *RoomManager) Join(roomID string, member Member) error {
	r, err := m.Room(roomID)
	if err != nil {
		return err
	}
	if r.Status != RoomWaiting {
		return fmt.Errorf("join %s: %w", roomID, ErrRoomBusy)
	}
	if len(r.Members) >= config.MaxPlayersPerRoom {
		return fmt.Errorf("join %s: %w", roomID, ErrRoomFull)
	}
	if member.ID == "" {
		member.ID = m.ids.New()
	}
	if r.index(member.ID) >= 0 {
		return fmt.Errorf("join %s: %w", roomID, ErrAlreadyMember)
	}
	r.Members = append(r.Members, member)
	return nil
}

// AddBot добавляет в комнату готового бота со случайным именем и персонажем.
func (m *RoomManager) AddBot(roomID string) (Member, error) {
	bot := Member{
		Name:      botNames[m.rng.Intn(len(botNames))],
		Character: defs.CharacterOrder[m.rng.Intn(len(defs.CharacterOrder))],
		Bot:       true,
		Ready:     true,
	}
	bot.ID = m.ids.New()
	if err := m.Join(roomID, bot); err != nil {
		return Member{}, err
	}
	return bot, nil
}

// SetReady меняет флаг готовности участника.
func (m *RoomManager) SetReady(roomID, memberID string, ready bool) error {
	r, err := m.Room(roomID)
	if err != nil {
		return err
	}
	i := r.index(memberID)
	if i < 0 {
		return fmt.Errorf("ready %s in %s: %w", memberID, roomID, ErrNotMember)
	}
	r.Members[i].Ready = ready
	// Снятая готовность прерывает отсчёт
	if !ready && r.Status == RoomStarting {
		m.cancelCountdown(r)
	}
	return nil
}

// Leave убирает участника. Если ушёл хост, хостом становится следующий
// игрок (или бот, если игроков не осталось). Пустая комната уничтожается
// вместе с её таймерами.
func (m *RoomManager) Leave(roomID, memberID string) error {
	r, err := m.Room(roomID)
	if err != nil {
		return err
	}
	i := r.index(memberID)
	if i < 0 {
		return fmt.Errorf("leave %s: %w", roomID, ErrNotMember)
	}
	r.Members = append(r.Members[:i], r.Members[i+1:]...)

	if !m.hasHumans(r) {
		m.destroy(r)
		return nil
	}
	if r.Status == RoomStarting {
		m.cancelCountdown(r)
	}
	if r.HostID == memberID {
		r.HostID = m.nextHost(r)
		logging.Logger.Debug().Str("room", r.ID).Str("host", r.HostID).Msg("host reassigned")
	}
	return nil
}

func (m *RoomManager) hasHumans(r *Room) bool {
	for _, mem := range r.Members {
		if !mem.Bot {
			return true
		}
	}
	return false
}

func (m *RoomManager) nextHost(r *Room) string {
	for _, mem := range r.Members {
		if !mem.Bot {
			return mem.ID
		}
	}
	return r.Members[0].ID
}

func (m *RoomManager) destroy(r *Room) {
	m.scheduler.CancelOwner(timerOwner(r.ID))
	delete(m.countdowns, r.ID)
	delete(m.rooms, r.ID)
	for i, id := range m.order {
		if id == r.ID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	logging.Logger.Debug().Str("room", r.ID).Msg("room destroyed")
}

// Start запускает отсчёт до начала миссии. Может только хост, когда все готовы.
func (m *RoomManager) Start(roomID, requesterID string) error {
	r, err := m.Room(roomID)
	if err != nil {
		return err
	}
	if r.HostID != requesterID {
		return fmt.Errorf("start %s: %w", roomID, ErrNotHost)
	}
	if r.Status != RoomWaiting {
		return fmt.Errorf("start %s (%s): %w", roomID, r.Status, ErrRoomBusy)
	}
	if !r.AllReady() {
		return fmt.Errorf("start %s: %w", roomID, ErrNotReady)
	}

	m.setStatus(r, RoomStarting)
	m.countdowns[r.ID] = m.scheduler.After(timerOwner(r.ID), config.MissionStartDelay, func() {
		delete(m.countdowns, r.ID)
		m.setStatus(r, RoomInProgress)
		if m.onStart != nil {
			m.onStart(r)
		}
	})
	return nil
}

// Countdown сколько секунд осталось до старта.
func (m *RoomManager) Countdown(roomID string) (float64, bool) {
	h, ok := m.countdowns[roomID]
	if !ok {
		return 0, false
	}
	return m.scheduler.Remaining(h)
}

// CancelStart прерывает отсчёт.
func (m *RoomManager) CancelStart(roomID string) error {
	r, err := m.Room(roomID)
	if err != nil {
		return err
	}
	if r.Status != RoomStarting {
		return fmt.Errorf("cancel %s: %w", roomID, ErrRoomBusy)
	}
	m.cancelCountdown(r)
	return nil
}

func (m *RoomManager) cancelCountdown(r *Room) {
	if h, ok := m.countdowns[r.ID]; ok {
		m.scheduler.Cancel(h)
		delete(m.countdowns, r.ID)
	}
	m.setStatus(r, RoomWaiting)
}

// Complete завершает миссию комнаты.
func (m *RoomManager) Complete(roomID string) error {
	r, err := m.Room(roomID)
	if err != nil {
		return err
	}
	if r.Status != RoomInProgress {
		return fmt.Errorf("complete %s (%s): %w", roomID, r.Status, ErrRoomBusy)
	}
	m.setStatus(r, RoomCompleted)
	return nil
}

// Close уничтожает комнату целиком.
func (m *RoomManager) Close(roomID string) error {
	r, err := m.Room(roomID)
	if err != nil {
		return err
	}
	m.destroy(r)
	return nil
}

func (m *RoomManager) setStatus(r *Room, status RoomStatus) {
	if r.Status == status {
		return
	}
	r.Status = status
	if m.eventDispatcher != nil {
		m.eventDispatcher.Dispatch(event.Event{Type: event.RoomStatusChange, Data: StatusData{RoomID: r.ID, Status: status}})
	}
}
