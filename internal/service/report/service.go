// Package report writes tamper-evident compliance reports for a matter:
// its ledger, the ledgers of every document it owns and both sides of its
// transfer provenance, as JSON lines chained with BLAKE2b-256.
package report

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/LawUtilities/ADMS.API-sub014/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type matterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Matter, error)
}

type documentRepo interface {
	ListByMatter(ctx context.Context, matterID uuid.UUID) ([]domain.Document, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Document, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type ledgerRepo interface {
	History(ctx context.Context, f domain.HistoryFilter) iter.Seq2[domain.LedgerEntry, error]
}

type transferRepo interface {
	Query(ctx context.Context, f domain.TransferFilter) iter.Seq2[domain.TransferRecord, error]
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config tunes report assembly.
type Config struct {
	// Workers bounds the ledger reads running in parallel.
	Workers     int
	LoaderWait  time.Duration
	LoaderBatch int
}

// Service builds compliance reports.
type Service struct {
	log       *slog.Logger
	cfg       Config
	matters   matterRepo
	documents documentRepo
	users     userRepo
	ledger    ledgerRepo
	transfers transferRepo
	now       func() time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithClock replaces time.Now for the report header.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new report service.
func NewService(
	log *slog.Logger,
	cfg Config,
	matters matterRepo,
	documents documentRepo,
	users userRepo,
	ledger ledgerRepo,
	transfers transferRepo,
	opts ...Option,
) *Service {
	s := &Service{
		log:       log.With("service", "report"),
		cfg:       cfg,
		matters:   matters,
		documents: documents,
		users:     users,
		ledger:    ledger,
		transfers: transfers,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// snapshot is everything a report is built from.
type snapshot struct {
	matter        *domain.Matter
	matterHistory []domain.LedgerEntry
	documents     []domain.Document
	docHistory    [][]domain.LedgerEntry
	transfers     []domain.TransferRecord
}

// WriteMatterReport writes the report for one matter to w and returns the
// number of lines and the final digest.
func (s *Service) WriteMatterReport(ctx context.Context, matterID uuid.UUID, w io.Writer) (Summary, error) {
	if matterID == uuid.Nil {
		return Summary{}, domain.NewValidationError("matter_id", "required")
	}

	snap, err := s.collect(ctx, matterID)
	if err != nil {
		return Summary{}, err
	}

	lines, err := s.buildLines(ctx, snap)
	if err != nil {
		return Summary{}, err
	}

	bw := bufio.NewWriter(w)
	c := newChain()
	for _, line := range lines {
		b, err := c.seal(line)
		if err != nil {
			return Summary{}, err
		}
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return Summary{}, fmt.Errorf("write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return Summary{}, fmt.Errorf("write report: %w", err)
	}

	sum := Summary{Lines: len(lines), Digest: c.digest()}
	s.log.InfoContext(ctx, "matter report written",
		slog.String("matter_id", matterID.String()),
		slog.Int("lines", sum.Lines),
		slog.String("digest", sum.Digest),
	)
	return sum, nil
}

// collect reads the matter, its documents and all ledgers. Ledger reads
// run concurrently.
func (s *Service) collect(ctx context.Context, matterID uuid.UUID) (*snapshot, error) {
	m, err := s.matters.GetByID(ctx, matterID)
	if err != nil {
		return nil, fmt.Errorf("get matter: %w", err)
	}

	docs, err := s.documents.ListByMatter(ctx, matterID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	snap := &snapshot{
		matter:     m,
		documents:  docs,
		docHistory: make([][]domain.LedgerEntry, len(docs)),
	}
	var from, to []domain.TransferRecord

	g, gctx := errgroup.WithContext(ctx)
	if s.cfg.Workers > 0 {
		g.SetLimit(s.cfg.Workers)
	}

	g.Go(func() error {
		var err error
		snap.matterHistory, err = drain(s.ledger.History(gctx, domain.HistoryFilter{Subject: domain.SubjectMatter, SubjectID: m.ID}))
		if err != nil {
			return fmt.Errorf("matter history: %w", err)
		}
		return nil
	})

	for i, d := range docs {
		g.Go(func() error {
			var err error
			snap.docHistory[i], err = drain(s.ledger.History(gctx, domain.HistoryFilter{Subject: domain.SubjectDocument, SubjectID: d.ID}))
			if err != nil {
				return fmt.Errorf("document %s history: %w", d.ID, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		var err error
		from, err = drain(s.transfers.Query(gctx, domain.TransferFilter{MatterID: m.ID, Direction: domain.DirectionFrom}))
		if err != nil {
			return fmt.Errorf("outgoing transfers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		to, err = drain(s.transfers.Query(gctx, domain.TransferFilter{MatterID: m.ID, Direction: domain.DirectionTo}))
		if err != nil {
			return fmt.Errorf("incoming transfers: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.transfers = append(from, to...)
	slices.SortStableFunc(snap.transfers, func(a, b domain.TransferRecord) int {
		return cmp.Or(
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.Direction, b.Direction),
			cmp.Compare(a.DocumentID.String(), b.DocumentID.String()),
		)
	})
	return snap, nil
}

// buildLines lays out the report. Document names of transfer rows and
// the actor summary are resolved through per-report loaders.
func (s *Service) buildLines(ctx context.Context, snap *snapshot) ([]*Line, error) {
	ld := s.newLoaders()
	m := snap.matter

	var lines []*Line
	add := func(l *Line) {
		l.Seq = len(lines) + 1
		lines = append(lines, l)
	}

	add(&Line{
		Kind:        KindHeader,
		MatterID:    ptr(m.ID),
		Description: m.Description,
		Status:      m.Status.String(),
		At:          ptr(domain.LedgerTime(s.now())),
	})

	events := make(map[uuid.UUID]int)
	entryLine := func(kind LineKind, e domain.LedgerEntry) *Line {
		events[e.UserID]++
		return &Line{
			Kind:     kind,
			Activity: e.Activity.String(),
			UserID:   ptr(e.UserID),
			UserName: e.UserName,
			At:       ptr(e.CreatedAt),
		}
	}

	for _, e := range snap.matterHistory {
		l := entryLine(KindMatter, e)
		l.MatterID = ptr(m.ID)
		add(l)
	}

	for i, d := range snap.documents {
		for _, e := range snap.docHistory[i] {
			l := entryLine(KindDocument, e)
			l.DocumentID = ptr(d.ID)
			l.FileName = d.FileName + extension(d.Extension)
			add(l)
		}
	}

	type pending struct {
		line   *Line
		doc    func() (*domain.Document, error)
		copied func() (*domain.Document, error)
	}
	var transfers []pending
	for _, rec := range snap.transfers {
		l := entryLine(KindTransfer, domain.LedgerEntry{
			LedgerKey: domain.LedgerKey{UserID: rec.UserID, CreatedAt: rec.CreatedAt},
			Activity:  rec.Activity,
			UserName:  rec.UserName,
		})
		l.MatterID = ptr(rec.MatterID)
		l.DocumentID = ptr(rec.DocumentID)
		l.Direction = rec.Direction.String()
		p := pending{line: l, doc: ld.documents.Load(ctx, rec.DocumentID)}
		if rec.CopiedDocumentID != nil {
			l.CopiedDocumentID = ptr(*rec.CopiedDocumentID)
			p.copied = ld.documents.Load(ctx, *rec.CopiedDocumentID)
		}
		transfers = append(transfers, p)
	}
	for _, p := range transfers {
		doc, err := p.doc()
		if err != nil {
			return nil, fmt.Errorf("resolve transferred document: %w", err)
		}
		if doc != nil {
			p.line.FileName = doc.FileName + extension(doc.Extension)
		}
		if p.copied != nil {
			cp, err := p.copied()
			if err != nil {
				return nil, fmt.Errorf("resolve copied document: %w", err)
			}
			if cp != nil {
				p.line.CopiedFileName = cp.FileName + extension(cp.Extension)
			}
		}
		add(p.line)
	}

	actors := make([]uuid.UUID, 0, len(events))
	for id := range events {
		actors = append(actors, id)
	}
	users, errs := ld.users.LoadMany(ctx, actors)()
	var actorLines []*Line
	for i, id := range actors {
		if len(errs) > i && errs[i] != nil {
			return nil, fmt.Errorf("resolve actor %s: %w", id, errs[i])
		}
		l := &Line{Kind: KindActor, UserID: ptr(id), Events: events[id]}
		if users[i] != nil {
			l.UserName = users[i].Name
		}
		actorLines = append(actorLines, l)
	}
	slices.SortFunc(actorLines, func(a, b *Line) int {
		return cmp.Or(cmp.Compare(a.UserName, b.UserName), cmp.Compare(a.UserID.String(), b.UserID.String()))
	})
	for _, l := range actorLines {
		add(l)
	}

	add(&Line{Kind: KindTrailer, MatterID: ptr(m.ID), Lines: len(lines)})
	return lines, nil
}

func extension(ext string) string {
	if ext == "" {
		return ""
	}
	return "." + strings.TrimPrefix(ext, ".")
}

func drain[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
