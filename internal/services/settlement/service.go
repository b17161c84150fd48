package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	domain "printdesk/internal/errors"
	"printdesk/internal/models"
	"printdesk/internal/repositories"
	"printdesk/internal/services/pricing"
	"printdesk/internal/services/reference"
	"printdesk/internal/services/wallet"
)

type Service interface {
	SubmitPrintRequest(ctx context.Context, req SubmitRequest) (*models.PrintingRequest, error)
	ListPrintingHistory(ctx context.Context, studentID uint, limit, offset int) ([]models.PrintingRequest, int64, error)
}

type service struct {
	repo        repositories.WalletRepository
	printing    repositories.PrintingRepository
	pricing     pricing.Service
	refs        reference.Generator
	cache       wallet.Cache
	metrics     wallet.MetricsCollector
	log         zerolog.Logger
	maxAttempts int
	backoff     time.Duration
}

func NewService(
	repo repositories.WalletRepository,
	printingRepo repositories.PrintingRepository,
	pricingSvc pricing.Service,
	refs reference.Generator,
	cache wallet.Cache,
	metrics wallet.MetricsCollector,
	log zerolog.Logger,
) Service {
	if repo == nil {
		panic("wallet repository is required")
	}
	if printingRepo == nil {
		panic("printing repository is required")
	}
	if pricingSvc == nil {
		panic("pricing service is required")
	}
	if refs == nil {
		refs = reference.NewGenerator()
	}
	if metrics == nil {
		metrics = &wallet.NoopMetricsCollector{}
	}

	return &service{
		repo:        repo,
		printing:    printingRepo,
		pricing:     pricingSvc,
		refs:        refs,
		cache:       cache,
		metrics:     metrics,
		log:         log,
		maxAttempts: DefaultMaxAttempts,
		backoff:     DefaultRetryBackoff,
	}
}

// SubmitPrintRequest settles one print job. Steps: validate, price,
// then inside a single transaction lock the wallet, check funds, debit,
// insert the PENDING request and its Print Payment ledger entry. An
// insufficient balance aborts the transaction with nothing written.
func (s *service) SubmitPrintRequest(ctx context.Context, req SubmitRequest) (*models.PrintingRequest, error) {
	started := time.Now()
	if err := validate(req); err != nil {
		s.metrics.RecordError("settlement", "invalid_request")
		return nil, err
	}

	totalCost, err := s.pricing.Quote(req.PaperSize, req.PrintType, req.Pages, req.Copies)
	if err != nil {
		if errors.Is(err, pricing.ErrRuleNotFound) {
			return nil, domain.ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to price request: %w", err)
	}

	var created *models.PrintingRequest
	var studentID, walletID uint
	attempt := func() error {
		return s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
			w, err := tx.GetByStudentIDForUpdate(req.StudentID)
			if err != nil {
				return err
			}
			studentID, walletID = w.StudentID, w.ID

			// Boundary: a balance exactly equal to the cost is enough.
			if w.Balance.LessThan(totalCost) {
				return repositories.ErrInsufficientFunds
			}
			if _, err := tx.ApplyDelta(w.ID, totalCost.Neg()); err != nil {
				return err
			}

			pr := &models.PrintingRequest{
				StudentID:   req.StudentID,
				FileName:    req.FileName,
				FileType:    req.FileType,
				Copies:      req.Copies,
				Pages:       req.Pages,
				PaperSize:   req.PaperSize,
				PrintType:   req.PrintType,
				Duplex:      req.Duplex,
				Status:      models.RequestStatusPending,
				TotalCost:   totalCost,
				RequestedAt: time.Now(),
			}
			if err := tx.CreatePrintingRequest(pr); err != nil {
				return err
			}

			entry := &models.Transaction{
				WalletID:  w.ID,
				StudentID: w.StudentID,
				Type:      models.TransactionTypePrintPayment,
				Amount:    totalCost.Neg(),
				Reference: s.refs.Next(models.TransactionTypePrintPayment),
				Status:    models.TransactionStatusSuccess,
			}
			if err := tx.CreateTransaction(entry); err != nil {
				return err
			}

			created = pr
			return nil
		})
	}

	err = s.withRetry(ctx, attempt)
	if err != nil {
		s.metrics.RecordError("settlement", err.Error())
		return nil, s.translate(err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateWallet(ctx, studentID, walletID)
	}
	s.metrics.RecordTransaction("print_payment", totalCost.InexactFloat64())
	s.metrics.RecordOperationDuration("settlement", time.Since(started))
	s.log.Info().
		Uint("student_id", req.StudentID).
		Uint("request_id", created.ID).
		Str("total_cost", totalCost.StringFixed(2)).
		Msg("print request settled")
	return created, nil
}

// withRetry reruns the whole unit of work on transient conflicts, up to
// maxAttempts. Business failures pass through on the first occurrence.
func (s *service) withRetry(ctx context.Context, attempt func() error) error {
	var err error
	for i := 0; i < s.maxAttempts; i++ {
		err = attempt()
		if err == nil || !repositories.IsRetryable(err) {
			return err
		}
		s.log.Warn().Int("attempt", i+1).Msg("settlement conflict, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.backoff << i):
		}
	}
	return err
}

func (s *service) ListPrintingHistory(ctx context.Context, studentID uint, limit, offset int) ([]models.PrintingRequest, int64, error) {
	reqs, err := s.printing.ListByStudent(ctx, studentID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list printing history: %w", err)
	}
	total, err := s.printing.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count printing history: %w", err)
	}
	return reqs, total, nil
}

func validate(req SubmitRequest) error {
	switch {
	case req.StudentID == 0:
		return domain.New("INVALID_REQUEST", "student id is required")
	case req.FileName == "":
		return domain.New("INVALID_REQUEST", "file name is required")
	case req.Copies < 1:
		return domain.New("INVALID_REQUEST", "copies must be at least 1")
	case req.Pages < 1:
		return domain.New("INVALID_REQUEST", "pages must be at least 1")
	case !models.ValidPaperSize(req.PaperSize):
		return domain.New("INVALID_REQUEST", "unknown paper size")
	case !models.ValidPrintType(req.PrintType):
		return domain.New("INVALID_REQUEST", "unknown print type")
	}
	return nil
}

func (s *service) translate(err error) error {
	switch {
	case errors.Is(err, repositories.ErrWalletNotFound):
		return domain.ErrWalletNotFound
	case errors.Is(err, repositories.ErrInsufficientFunds):
		return domain.ErrInsufficientFunds
	case repositories.IsRetryable(err):
		return domain.ErrConflictRetryable
	default:
		return err
	}
}
