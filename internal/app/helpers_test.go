package app

import (
	"log/slog"

	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func available(name, suffix string, price float64) availability.Candidate {
	return availability.Candidate{Name: name, Suffix: suffix, Price: price, Status: availability.StatusAvailable}
}

func taken(name, suffix string, price float64) availability.Candidate {
	return availability.Candidate{Name: name, Suffix: suffix, Price: price, Status: availability.StatusTaken}
}
