package converter

import (
	"mines_backend/internal/api/dto/mines"
	"mines_backend/internal/model"
)

func ToRoundResponse(round model.Round) mines.RoundResponse {
	return mines.RoundResponse{
		BoardSize:   round.BoardSize,
		HazardCount: round.HazardCount,
		Hazards:     round.Hazards,
		MineReward:  round.MineReward,
	}
}

func ToRoundReport(accountID int64, req mines.ResultRequest) model.RoundReport {
	return model.RoundReport{
		AccountID: accountID,
		Delta:     req.Delta,
	}
}
