// Package database implements the persistent data store on top of gorm.
// Postgres is the production backend; sqlite serves local runs and tests.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/studio-site/internal/domain"
	"github.com/jsamuelsen/studio-site/internal/platform/logging"
	"github.com/jsamuelsen/studio-site/internal/ports"
)

// HealthCheckName identifies the database in readiness responses.
const HealthCheckName = "database"

// ErrUnsupportedURL is returned when the connection URL names no known backend.
var ErrUnsupportedURL = errors.New("unsupported database url")

var (
	_ ports.CatalogStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Config holds connection settings.
type Config struct {
	// URL is a postgres:// or postgresql:// URL, or a sqlite location given
	// as sqlite://path, file:... or :memory:.
	URL string

	// Debug logs every SQL statement.
	Debug bool

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store is the database-backed data store.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
	now    func() time.Time
}

// Open connects, verifies the connection and migrates the schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dialector, driver, err := dialectorFor(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newGormLogger(logger, cfg.Debug)})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql handle: %w", err)
	}

	switch {
	case driver == "sqlite":
		// sqlite serializes writers; one connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	case cfg.MaxOpenConns > 0:
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, domain.NewUnavailableError(HealthCheckName, err.Error())
	}

	if err := db.WithContext(ctx).AutoMigrate(models()...); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	logger.InfoContext(ctx, "database ready", slog.String("driver", driver))

	return &Store{db: db, logger: logger, now: time.Now}, nil
}

// dialectorFor picks the gorm driver from the URL scheme.
func dialectorFor(url string) (gorm.Dialector, string, error) {
	u := strings.TrimSpace(url)
	lower := strings.ToLower(u)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return postgres.Open(u), "postgres", nil
	case strings.HasPrefix(lower, "sqlite://"):
		return sqlite.Open(u[len("sqlite://"):]), "sqlite", nil
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return sqlite.Open(u), "sqlite", nil
	default:
		return nil, "", fmt.Errorf("%w: expected postgres:// or sqlite:// scheme", ErrUnsupportedURL)
	}
}

func newGormLogger(logger *slog.Logger, debug bool) gormlogger.Interface {
	// Slow queries and errors surface as WARN; statement logging is TRACE.
	level, lineLevel := gormlogger.Warn, slog.LevelWarn
	if debug {
		level, lineLevel = gormlogger.Info, logging.LevelTrace
	}

	return gormlogger.New(
		slog.NewLogLogger(logger.With(slog.String("component", "gorm")).Handler(), lineLevel),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// ListServices returns every service ordered by ID.
func (s *Store) ListServices(ctx context.Context) ([]domain.Service, error) {
	var rows []serviceRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domain.NewStorageError("list services", err)
	}

	out := make([]domain.Service, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}

	return out, nil
}

// ListPortfolio returns every portfolio item ordered by ID.
func (s *Store) ListPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	var rows []portfolioRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domain.NewStorageError("list portfolio", err)
	}

	out := make([]domain.PortfolioItem, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}

	return out, nil
}

// ListTestimonials returns every testimonial ordered by ID.
func (s *Store) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var rows []testimonialRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domain.NewStorageError("list testimonials", err)
	}

	out := make([]domain.Testimonial, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}

	return out, nil
}

// CreateQuoteRequest inserts one row and returns it with the generated ID.
func (s *Store) CreateQuoteRequest(ctx context.Context, in domain.QuoteRequestInput) (*domain.QuoteRequest, error) {
	row := quoteRequestRecord{
		Name:            in.Name,
		Email:           in.Email,
		ProjectType:     in.ProjectType,
		Message:         in.Message,
		SelectedDesigns: in.SelectedDesigns,
		Status:          string(domain.QuoteStatusPending),
		CreatedAt:       s.now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, domain.NewStorageError("create quote request", err)
	}

	return row.toDomain(), nil
}

// ListQuoteRequests returns every stored quote request ordered by ID.
func (s *Store) ListQuoteRequests(ctx context.Context) ([]domain.QuoteRequest, error) {
	var rows []quoteRequestRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domain.NewStorageError("list quote requests", err)
	}

	out := make([]domain.QuoteRequest, len(rows))
	for i, r := range rows {
		out[i] = *r.toDomain()
	}

	return out, nil
}

// SeedCatalog inserts missing catalog entries in a single transaction.
// Names and titles carry unique indexes and conflicting rows are skipped,
// so concurrent starts against the same database do not duplicate content.
func (s *Store) SeedCatalog(ctx context.Context, c domain.Catalog) error {
	services := make([]serviceRecord, 0, len(c.Services))
	for _, svc := range c.Services {
		services = append(services, serviceRecord{
			Name:        svc.Name,
			Description: svc.Description,
			Icon:        svc.Icon,
			Category:    string(svc.Category),
		})
	}

	portfolio := make([]portfolioRecord, 0, len(c.Portfolio))
	for _, item := range c.Portfolio {
		portfolio = append(portfolio, portfolioRecord{
			Title:       item.Title,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			Category:    item.Category,
			Client:      item.Client,
		})
	}

	testimonials := make([]testimonialRecord, 0, len(c.Testimonials))
	for _, t := range c.Testimonials {
		testimonials = append(testimonials, testimonialRecord{
			Name:      t.Name,
			Role:      t.Role,
			Content:   t.Content,
			AvatarURL: t.AvatarURL,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertMissing(tx, "name", services); err != nil {
			return fmt.Errorf("services: %w", err)
		}

		if err := insertMissing(tx, "title", portfolio); err != nil {
			return fmt.Errorf("portfolio: %w", err)
		}

		if err := insertMissing(tx, "name", testimonials); err != nil {
			return fmt.Errorf("testimonials: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.NewStorageError("seed catalog", err)
	}

	return nil
}

// insertMissing inserts rows in order, skipping any whose key column
// already holds the same value.
func insertMissing[T any](tx *gorm.DB, key string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		DoNothing: true,
	}).Create(&rows).Error
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return HealthCheckName }

// Check pings the database.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
