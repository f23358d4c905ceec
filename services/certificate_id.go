package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/6ixminds/labs_backend/utils"
)

const (
	minFallbackSequence = 10000
	maxFallbackSequence = 99999
)

type CertificateCounter interface {
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
}

// CertificateIDGenerator derives "{ORG}-IN-{year}-{00000}" identifiers from
// the number of certificates already issued in the current year.
//
// Counting and inserting are separate calls, so two concurrent issuances can
// derive the same identifier. The unique index on certificate_id turns that
// into a conflict at insert time; it is not prevented here.
type CertificateIDGenerator struct {
	counter CertificateCounter
	orgCode string
	now     func() time.Time
	random  func() int
}

func NewCertificateIDGenerator(counter CertificateCounter, orgCode string) *CertificateIDGenerator {
	return &CertificateIDGenerator{
		counter: counter,
		orgCode: orgCode,
		now:     time.Now,
		random: func() int {
			return utils.RandomInRange(minFallbackSequence, maxFallbackSequence)
		},
	}
}

func (g *CertificateIDGenerator) Prefix(year int) string {
	return fmt.Sprintf("%s-IN-%d-", g.orgCode, year)
}

// Next returns the candidate identifier for this year, skipping `offset`
// sequence numbers past count+1. A failing count never blocks issuance: a
// random five-digit sequence is used instead.
func (g *CertificateIDGenerator) Next(ctx context.Context, offset int) string {
	prefix := g.Prefix(g.now().Year())

	count, err := g.counter.CountByPrefix(ctx, prefix)
	if err != nil {
		seq := g.random()
		slog.Warn("certificate count failed, falling back to random sequence",
			"prefix", prefix, "sequence", seq, "error", err)
		return fmt.Sprintf("%s%05d", prefix, seq)
	}

	return fmt.Sprintf("%s%05d", prefix, count+1+int64(offset))
}
