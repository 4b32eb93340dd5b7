package usecase

import (
	"context"
	"errors"
	"testing"

	"nagrik_seva/internal/domain/entities"
	mock_interfaces "nagrik_seva/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAgentUseCaseForTest(t *testing.T, ctrl *gomock.Controller) (*AgentUseCase, *mock_interfaces.MockIAgentRepository) {
	t.Helper()
	agents := mock_interfaces.NewMockIAgentRepository(ctrl)
	audit := mock_interfaces.NewMockIAuditRepository(ctrl)
	audit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e entities.AuditEntry) (entities.AuditEntry, error) { return e, nil },
	).AnyTimes()
	return NewAgentUseCase(agents, NewAuditUseCase(audit)), agents
}

func TestAgentUseCase_CreateAgent(t *testing.T) {
	t.Run("operator forbidden", func(t *testing.T) {
		uc := NewAgentUseCase(nil, nil)
		_, err := uc.CreateAgent(context.Background(), operator(), CreateAgentInput{Name: "X", Role: entities.RoleOperator, MaxCapacity: 5})
		if !errors.Is(err, ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		uc := NewAgentUseCase(nil, nil)
		_, err := uc.CreateAgent(context.Background(), supervisor(), CreateAgentInput{Name: "  ", Role: entities.RoleOperator, MaxCapacity: 5})
		if !errors.Is(err, ErrInvalidAgentInput) {
			t.Fatalf("expected ErrInvalidAgentInput, got %v", err)
		}
	})

	t.Run("zero capacity", func(t *testing.T) {
		uc := NewAgentUseCase(nil, nil)
		_, err := uc.CreateAgent(context.Background(), supervisor(), CreateAgentInput{Name: "X", Role: entities.RoleOperator})
		if !errors.Is(err, ErrInvalidAgentInput) {
			t.Fatalf("expected ErrInvalidAgentInput, got %v", err)
		}
	})

	t.Run("create success with wildcard specialization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Agent{})).DoAndReturn(
			func(_ context.Context, a entities.Agent) (entities.Agent, error) {
				if a.ID == "" || a.Version != 1 || a.CreatedAt.IsZero() {
					t.Fatalf("unexpected agent: %+v", a)
				}
				if !a.Specializations.Any || len(a.Specializations.Tags) != 1 {
					t.Fatalf("unexpected specializations: %+v", a.Specializations)
				}
				return a, nil
			},
		)

		created, err := uc.CreateAgent(context.Background(), supervisor(), CreateAgentInput{
			Name:            " Asha ",
			Role:            entities.RoleOperator,
			Specializations: []string{entities.WildcardSpecialization, "passport", ""},
			MaxCapacity:     10,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if created.Name != "Asha" {
			t.Fatalf("expected trimmed name, got %q", created.Name)
		}
	})
}

func TestAgentUseCase_DeleteAgent(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Agent{}, nil)

		err := uc.DeleteAgent(context.Background(), supervisor(), "missing")
		if !errors.Is(err, ErrAgentNotFound) {
			t.Fatalf("expected ErrAgentNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().GetByID(gomock.Any(), "agent-1").Return(entities.Agent{ID: "agent-1", Name: "Asha"}, nil)
		agents.EXPECT().Delete(gomock.Any(), "agent-1").Return(nil)

		if err := uc.DeleteAgent(context.Background(), supervisor(), "agent-1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestAgentUseCase_SetBlocked(t *testing.T) {
	t.Run("operator forbidden", func(t *testing.T) {
		uc := NewAgentUseCase(nil, nil)
		_, err := uc.SetBlocked(context.Background(), operator(), "agent-1", true)
		if !errors.Is(err, ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("already in requested state is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().GetByID(gomock.Any(), "agent-1").Return(entities.Agent{ID: "agent-1", IsBlocked: true}, nil)

		a, err := uc.SetBlocked(context.Background(), supervisor(), "agent-1", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !a.IsBlocked {
			t.Fatalf("expected blocked agent")
		}
	})

	t.Run("block success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().GetByID(gomock.Any(), "agent-1").Return(entities.Agent{ID: "agent-1", Name: "Asha", Version: 3}, nil)
		agents.EXPECT().SetBlocked(gomock.Any(), "agent-1", true, int64(3)).Return(entities.Agent{ID: "agent-1", Name: "Asha", IsBlocked: true, Version: 4}, nil)

		a, err := uc.SetBlocked(context.Background(), supervisor(), "agent-1", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !a.IsBlocked || a.Version != 4 {
			t.Fatalf("unexpected agent: %+v", a)
		}
	})

	t.Run("version race retries then gives up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().GetByID(gomock.Any(), "agent-1").Return(entities.Agent{ID: "agent-1", Version: 1}, nil).Times(loadAdjustRetries)
		agents.EXPECT().SetBlocked(gomock.Any(), "agent-1", true, int64(1)).Return(entities.Agent{}, nil).Times(loadAdjustRetries)

		_, err := uc.SetBlocked(context.Background(), supervisor(), "agent-1", true)
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestAgentUseCase_Heartbeat(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Agent{}, nil)

		_, err := uc.Heartbeat(context.Background(), "missing", true)
		if !errors.Is(err, ErrAgentNotFound) {
			t.Fatalf("expected ErrAgentNotFound, got %v", err)
		}
	})

	t.Run("toggle online", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().GetByID(gomock.Any(), "agent-1").Return(entities.Agent{ID: "agent-1", IsOnline: false, Version: 2}, nil)
		agents.EXPECT().SetOnline(gomock.Any(), "agent-1", true, int64(2)).Return(entities.Agent{ID: "agent-1", IsOnline: true, Version: 3}, nil)

		a, err := uc.Heartbeat(context.Background(), "agent-1", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !a.IsOnline {
			t.Fatalf("expected online agent")
		}
	})
}

func TestAgentUseCase_List(t *testing.T) {
	t.Run("operator forbidden", func(t *testing.T) {
		uc := NewAgentUseCase(nil, nil)
		_, err := uc.List(context.Background(), operator())
		if !errors.Is(err, ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, agents := newAgentUseCaseForTest(t, ctrl)

		agents.EXPECT().List(gomock.Any()).Return([]entities.Agent{{ID: "a"}, {ID: "b"}}, nil)

		out, err := uc.List(context.Background(), supervisor())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 agents, got %d", len(out))
		}
	})
}
