package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/skillpath/learning-service/internal/ai"
	"github.com/skillpath/learning-service/internal/events"
	"github.com/skillpath/learning-service/internal/repositories"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/validator"
)

// Dependencies collects everything the services need, constructed once at
// startup and passed explicitly.
type Dependencies struct {
	KV       *store.KV
	Registry repositories.UserRegistry

	// RoadmapProvider serves roadmap generation and chat; ContentProvider
	// serves topic-content generation. Each declares its own degradation
	// policy at the call site.
	RoadmapProvider ai.CompletionProvider
	ContentProvider ai.CompletionProvider

	Publisher events.EventPublisher
	Logger    *slog.Logger
	Validator *validator.Validator
}

type serviceManager struct {
	deps Dependencies

	account      AccountService
	profile      ProfileService
	roadmap      RoadmapService
	progress     ProgressService
	content      ContentService
	chat         ChatService
	submission   SubmissionService
	gamification GamificationService
	report       ReportService

	shutdown bool
	mu       sync.RWMutex
}

// NewServiceManager wires all services from the shared dependencies.
func NewServiceManager(deps Dependencies) ServiceManager {
	sm := &serviceManager{deps: deps}

	sm.account = NewAccountService(deps.Registry, deps.Logger, deps.Validator)
	sm.profile = NewProfileService(deps.KV, deps.Logger, deps.Validator)
	sm.roadmap = NewRoadmapService(deps.KV, deps.RoadmapProvider, deps.Publisher, deps.Logger)
	sm.progress = NewProgressService(deps.KV, deps.Publisher, deps.Logger, deps.Validator)
	sm.content = NewContentService(deps.KV, deps.ContentProvider, deps.Logger, deps.Validator)
	sm.chat = NewChatService(deps.KV, deps.RoadmapProvider, deps.Logger, deps.Validator)
	sm.submission = NewSubmissionService(deps.KV, deps.Logger, deps.Validator)
	sm.gamification = NewGamificationService(deps.KV, deps.Publisher, deps.Logger, deps.Validator)
	sm.report = NewReportService(sm.profile, sm.progress, deps.Logger)

	return sm
}

func (sm *serviceManager) Account() AccountService           { return sm.account }
func (sm *serviceManager) Profile() ProfileService           { return sm.profile }
func (sm *serviceManager) Roadmap() RoadmapService           { return sm.roadmap }
func (sm *serviceManager) Progress() ProgressService         { return sm.progress }
func (sm *serviceManager) Content() ContentService           { return sm.content }
func (sm *serviceManager) Chat() ChatService                 { return sm.chat }
func (sm *serviceManager) Submission() SubmissionService     { return sm.submission }
func (sm *serviceManager) Gamification() GamificationService { return sm.gamification }
func (sm *serviceManager) Report() ReportService             { return sm.report }

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	return sm.deps.KV.Ping(ctx)
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.shutdown {
		return nil
	}
	sm.shutdown = true
	return sm.deps.Publisher.Close()
}
