// internal/app/game.go
package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"go-scope-range/internal/component"
	"go-scope-range/internal/config"
	"go-scope-range/internal/event"
	"go-scope-range/internal/sched"
	"go-scope-range/internal/system"
	"go-scope-range/internal/utils"
)

// Notifier получает итог сессии синхронно, в момент завершения.
// Реализация может блокировать дальнейшую игру до подтверждения.
type Notifier interface {
	Notify(report component.Report)
}

// Game holds the session state and runs the shooting range simulation.
type Game struct {
	Session   component.Session
	Targets   []component.Target
	Hits      []component.HitEffect
	Misses    []component.MissEffect
	Pointer   component.Pointer
	SessionID string

	settings        config.Settings
	scheduler       *sched.Scheduler
	spawner         *system.Spawner
	eventDispatcher *event.Dispatcher
	notifier        Notifier

	countdown *sched.Handle
	nextFrame *sched.Handle
	startedAt time.Duration
	report    component.Report
	frames    int
}

// NewGame creates an idle game. notifier may be nil.
func NewGame(settings config.Settings, scheduler *sched.Scheduler, rng *utils.PRNGService, dispatcher *event.Dispatcher, notifier Notifier) *Game {
	if scheduler == nil || rng == nil || dispatcher == nil {
		panic("app: scheduler, rng and dispatcher are required")
	}
	return &Game{
		Session:         component.Session{Phase: component.Idle, TimeLeft: settings.SessionSeconds},
		settings:        settings,
		scheduler:       scheduler,
		spawner:         system.NewSpawner(rng, system.FieldBounds),
		eventDispatcher: dispatcher,
		notifier:        notifier,
	}
}

// Running сообщает, идёт ли сессия.
func (g *Game) Running() bool {
	return g.Session.Phase == component.Running
}

// StartEnabled сообщает, доступна ли кнопка старта (только вне сессии).
func (g *Game) StartEnabled() bool {
	return !g.Running()
}

// Now возвращает текущее время игровых часов.
func (g *Game) Now() time.Duration {
	return g.scheduler.Now()
}

// Frames: сколько кадров симуляции прошло за всё время.
func (g *Game) Frames() int {
	return g.frames
}

// LastReport возвращает итог последней завершённой сессии.
func (g *Game) LastReport() component.Report {
	return g.report
}

// Start начинает новую сессию. Во время сессии ничего не делает.
func (g *Game) Start() {
	if g.Running() {
		return
	}

	g.SessionID = uuid.NewString()
	g.Session = component.Session{
		Phase:    component.Running,
		TimeLeft: g.settings.SessionSeconds,
	}
	g.Targets = nil
	g.Hits = nil
	g.Misses = nil
	g.startedAt = g.scheduler.Now()

	g.countdown = g.scheduler.Every(config.CountdownInterval, g.tick)
	g.nextFrame = g.scheduler.RequestFrame(g.frame)

	log.Info().Str("session", g.SessionID).Int("seconds", g.Session.TimeLeft).Msg("session started")
	g.eventDispatcher.Dispatch(event.Event{Type: event.SessionStarted, Data: g.SessionID})
}

// frame выполняет один шаг симуляции (prune, step, spawn) и заказывает следующий кадр.
func (g *Game) frame(now time.Duration) {
	if !g.Running() {
		return
	}
	g.frames++

	g.Targets = system.Prune(g.Targets, now)
	g.Hits = system.PruneHits(g.Hits, now)
	g.Misses = system.PruneMisses(g.Misses, now)

	factor := system.SpeedFactor(g.Pointer)
	g.Targets = system.Step(g.Targets, factor, system.FieldBounds)
	g.Hits = system.FloatHits(g.Hits, factor)

	g.Targets = system.EnsurePopulation(g.Targets, g.settings.MinTargets, g.spawner, now)

	if g.Running() {
		g.nextFrame = g.scheduler.RequestFrame(g.frame)
	}
}

// tick отсчитывает секунду таймера.
func (g *Game) tick(time.Duration) {
	if !g.Running() {
		return
	}
	g.Session.TimeLeft--
	g.eventDispatcher.Dispatch(event.Event{Type: event.ClockTicked, Data: g.Session.TimeLeft})
	if g.Session.TimeLeft <= 0 {
		g.End(component.ReasonTimeout)
	}
}

// MovePointer запоминает позицию курсора в координатах поля.
func (g *Game) MovePointer(x, y float64) {
	g.Pointer.X = x
	g.Pointer.Y = y
}

// SetScope включает прицел (только во время сессии) или выключает его.
func (g *Game) SetScope(on bool) {
	if on && !g.Running() {
		return
	}
	if g.Pointer.Scoped == on {
		return
	}
	g.Pointer.Scoped = on
	g.eventDispatcher.Dispatch(event.Event{Type: event.ScopeChanged, Data: on})
}

// Shoot обрабатывает выстрел по экранным координатам поля.
// Возвращает очки и признак попадания.
func (g *Game) Shoot(x, y float64) (int, bool) {
	if !g.Running() {
		return 0, false
	}
	now := g.scheduler.Now()
	wx, wy := system.ScreenToWorld(x, y, g.Pointer)

	if i, ok := system.HitTest(g.Targets, wx, wy); ok {
		// эффект попадания ставится в центр мишени, а не в точку клика
		hit := g.Targets[i]
		points := system.Points(hit.Size)
		g.Session.Score += points
		g.Hits = system.AddHit(g.Hits, hit.X, hit.Y, points, now)
		g.Targets = system.Remove(g.Targets, i)

		g.eventDispatcher.Dispatch(event.Event{
			Type: event.TargetHit,
			Data: event.Hit{X: hit.X, Y: hit.Y, Points: points, Score: g.Session.Score},
		})
		return points, true
	}

	g.Session.Misses++
	g.Misses = system.AddMiss(g.Misses, wx, wy, now)
	g.eventDispatcher.Dispatch(event.Event{
		Type: event.TargetMissed,
		Data: event.Miss{X: wx, Y: wy, Misses: g.Session.Misses},
	})
	if g.Session.Misses >= g.settings.MaxMisses {
		g.End(component.ReasonMissLimit)
	}
	return 0, false
}

// End завершает сессию. Повторный вызов ничего не меняет и возвращает
// тот же итог.
func (g *Game) End(reason component.EndReason) component.Report {
	if !g.Running() {
		return g.report
	}

	g.Session.Phase = component.Ended
	g.countdown.Cancel()
	g.nextFrame.Cancel()
	g.SetScope(false)

	g.report = component.Report{
		SessionID: g.SessionID,
		Score:     g.Session.Score,
		Misses:    g.Session.Misses,
		TimeLeft:  g.Session.TimeLeft,
		Reason:    reason,
		Duration:  g.scheduler.Now() - g.startedAt,
	}

	log.Info().
		Str("session", g.SessionID).
		Str("reason", string(reason)).
		Int("score", g.report.Score).
		Int("misses", g.report.Misses).
		Dur("duration", g.report.Duration).
		Msg("session ended")

	g.eventDispatcher.Dispatch(event.Event{Type: event.SessionEnded, Data: g.report})
	if g.notifier != nil {
		g.notifier.Notify(g.report)
	}
	return g.report
}
