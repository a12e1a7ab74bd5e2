package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/temple-billing/internal/domain/enum"
	"github.com/sangkips/temple-billing/internal/domain/repository"
	"github.com/sangkips/temple-billing/pkg/utils"
)

// ReceiptSequencer issues receipt numbers of the form
// <prefix>/<fiscal year>/<serial>. Next must run inside the transaction
// that inserts the billing row using the number.
type ReceiptSequencer interface {
	Next(ctx context.Context, now time.Time) (string, error)
}

// NewReceiptSequencer builds the sequencer for strategy
func NewReceiptSequencer(
	strategy enum.SequencerStrategy,
	prefix string,
	billingRepo repository.BillingRepository,
	counterRepo repository.ReceiptCounterRepository,
) ReceiptSequencer {
	scan := &scanSequencer{prefix: prefix, billingRepo: billingRepo}
	if strategy == enum.SequencerScan {
		return scan
	}
	return &counterSequencer{scan: scan, counterRepo: counterRepo}
}

// ParseSerial extracts the serial from the third "/" segment of a receipt
// number. Only the leading digits count, so "12-old" yields 12. A serial
// too large to be followed by another is not valid.
func ParseSerial(receiptNo string) (int64, bool) {
	parts := strings.Split(receiptNo, "/")
	if len(parts) < 3 {
		return 0, false
	}
	serial, ok := utils.LeadingInt(parts[2])
	if !ok || serial == math.MaxInt64 {
		return 0, false
	}
	return serial, true
}

func formatReceiptNo(series string, serial int64) string {
	return series + "/" + strconv.FormatInt(serial, 10)
}

// scanSequencer derives the next serial from the most recently inserted
// receipt of the fiscal year. Concurrent callers can compute the same
// number; the unique index on receipt_no rejects the loser.
type scanSequencer struct {
	prefix      string
	billingRepo repository.BillingRepository
}

func (s *scanSequencer) series(now time.Time) string {
	return s.prefix + "/" + FiscalYear(now)
}

// lastSerial returns the serial of the latest receipt in series, or 0.
func (s *scanSequencer) lastSerial(ctx context.Context, series string) (int64, error) {
	last, err := s.billingRepo.LastReceiptNo(ctx, series+"/")
	if err != nil {
		return 0, fmt.Errorf("read last receipt: %w", err)
	}
	if last == "" {
		return 0, nil
	}
	serial, ok := ParseSerial(last)
	if !ok {
		return 0, nil
	}
	return serial, nil
}

func (s *scanSequencer) Next(ctx context.Context, now time.Time) (string, error) {
	series := s.series(now)
	last, err := s.lastSerial(ctx, series)
	if err != nil {
		return "", err
	}
	return formatReceiptNo(series, last+1), nil
}

// counterSequencer keeps one counter row per series. The first receipt of
// a series seeds the counter from existing billing rows so numbering
// continues where a scan-based deployment left off.
type counterSequencer struct {
	scan        *scanSequencer
	counterRepo repository.ReceiptCounterRepository
}

func (s *counterSequencer) Next(ctx context.Context, now time.Time) (string, error) {
	series := s.scan.series(now)

	serial, found, err := s.counterRepo.Increment(ctx, series)
	if err != nil {
		return "", fmt.Errorf("increment receipt counter: %w", err)
	}
	if found {
		return formatReceiptNo(series, serial), nil
	}

	last, err := s.scan.lastSerial(ctx, series)
	if err != nil {
		return "", err
	}
	if err := s.counterRepo.Seed(ctx, series, last); err != nil {
		return "", fmt.Errorf("seed receipt counter: %w", err)
	}

	serial, found, err = s.counterRepo.Increment(ctx, series)
	if err != nil {
		return "", fmt.Errorf("increment receipt counter: %w", err)
	}
	if !found {
		return "", fmt.Errorf("receipt counter %s missing after seed", series)
	}
	return formatReceiptNo(series, serial), nil
}
