package game

import (
	"context"

	"mines_backend/internal/model"
	"mines_backend/internal/service"
)

type serv struct {
	gen      *Generator
	settings service.SettingsService
	ledger   service.LedgerService
}

func NewGameService(gen *Generator, settings service.SettingsService, ledger service.LedgerService) service.GameService {
	return &serv{
		gen:      gen,
		settings: settings,
		ledger:   ledger,
	}
}

// StartRound - новая раскладка с текущими настройками
func (s *serv) StartRound(ctx context.Context) (*model.Round, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	boardSize := s.settings.BoardSize()
	hazards, err := s.gen.GenerateRound(boardSize, int(current.HazardCount))
	if err != nil {
		return nil, err
	}

	return &model.Round{
		BoardSize:   boardSize,
		HazardCount: len(hazards),
		Hazards:     hazards,
		MineReward:  current.MineReward,
	}, nil
}

// ReportRound применяет итог раунда, посчитанный клиентом
func (s *serv) ReportRound(ctx context.Context, report model.RoundReport) (int64, error) {
	return s.ledger.AdjustBalance(ctx, model.Adjustment{
		AccountID: report.AccountID,
		Delta:     report.Delta,
		Reason:    model.ReasonRound,
	})
}
