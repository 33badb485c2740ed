package delayed

import (
	"container/heap"
	"context"
	"runtime/debug"
	"sync"
	"time"

	"tiffin/pkg/logger"
)

type task struct {
	at   time.Time
	name string
	fn   func(ctx context.Context)
	seq  uint64 // порядок постановки при равном времени
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h taskHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x interface{}) { *h = append(*h, x.(*task)) }
func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Scheduler выполняет задачи с задержкой без блокировки горутин ожиданием.
// Одна горутина ждет ближайший дедлайн по min-heap, готовые задачи
// запускаются каждая в своей горутине. Тысячи отложенных задач стоят
// только памяти, а не заблокированных воркеров.
type Scheduler struct {
	log handlerLogger

	mu     sync.Mutex
	tasks  taskHeap
	seq    uint64
	wakeup chan struct{}
}

// New создает планировщик и запускает цикл обработки до отмены ctx.
func New(ctx context.Context, log handlerLogger) *Scheduler {
	s := &Scheduler{
		log:    log,
		tasks:  make(taskHeap, 0, 64),
		wakeup: make(chan struct{}, 1),
	}
	heap.Init(&s.tasks)

	go s.run(ctx)
	return s
}

// Schedule ставит задачу на выполнение через delay.
// Нулевая и отрицательная задержка означает "выполнить сразу".
// Контекст задачи отменяется при остановке планировщика.
func (s *Scheduler) Schedule(delay time.Duration, name string, fn func(ctx context.Context)) {
	s.ScheduleAt(time.Now().Add(delay), name, fn)
}

// ScheduleAt ставит задачу на выполнение не раньше момента at.
func (s *Scheduler) ScheduleAt(at time.Time, name string, fn func(ctx context.Context)) {
	s.mu.Lock()
	s.seq++
	heap.Push(&s.tasks, &task{at: at, name: name, fn: fn, seq: s.seq})
	s.mu.Unlock()

	select {
	case s.wakeup <- struct{}{}:
	default:
	}
}

// Pending количество задач в очереди. Используется в тестах и метриках.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Scheduler) run(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		next, ok := s.nextDeadline()

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		if ok {
			timer.Reset(time.Until(next))
		} else {
			timer.Reset(time.Hour)
		}

		select {
		case <-ctx.Done():
			s.log.Warn("delayed scheduler stopping (context cancelled)",
				logger.NewField("pending", s.Pending()),
			)
			return
		case <-s.wakeup:
			// пересчитываем ближайший дедлайн
		case <-timer.C:
			for _, due := range s.popDue(time.Now()) {
				go s.executeSafely(ctx, due)
			}
		}
	}
}

func (s *Scheduler) nextDeadline() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tasks) == 0 {
		return time.Time{}, false
	}
	return s.tasks[0].at, true
}

func (s *Scheduler) popDue(now time.Time) []*task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []*task
	for len(s.tasks) > 0 && !s.tasks[0].at.After(now) {
		due = append(due, heap.Pop(&s.tasks).(*task))
	}
	return due
}

func (s *Scheduler) executeSafely(ctx context.Context, t *task) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.log.Error("Delayed task panic",
				logger.NewField("task", t.name),
				logger.NewField("recover", r),
				logger.NewField("stack", stack),
			)
		}
	}()

	s.log.Info("executing delayed task",
		logger.NewField("task", t.name),
	)
	t.fn(ctx)
}
