package coverage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ams-coverage/core/reconcile"
	"ams-coverage/feature/report"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubFramework struct {
	rules []reconcile.FrameworkRule
	err   error
	calls []string
}

func (s *stubFramework) Load(ctx context.Context, name string) ([]reconcile.FrameworkRule, error) {
	s.calls = append(s.calls, name)
	return s.rules, s.err
}

func (s *stubFramework) Locate(name string) string {
	return "https://packs.example/" + name
}

type stubCatalogue struct {
	rules []reconcile.CatalogueRule
	err   error
}

func (s *stubCatalogue) Load(ctx context.Context) ([]reconcile.CatalogueRule, error) {
	return s.rules, s.err
}

func (s *stubCatalogue) Describe() string {
	return "testdata/catalogue.csv"
}

func sampleFramework() []reconcile.FrameworkRule {
	return []reconcile.FrameworkRule{
		{Name: "rule-a", Owner: "AWS", SourceIdentifier: "A"},
		{Name: "rule-b", Owner: "AWS", SourceIdentifier: "B"},
		{Name: "rule-c", Owner: "AWS", SourceIdentifier: "C"},
	}
}

func sampleCatalogue() []reconcile.CatalogueRule {
	return []reconcile.CatalogueRule{
		{Name: "ams-b", SourceIdentifier: "B", DocLink: "https://docs/b", Service: "S3"},
		{Name: "ams-d", SourceIdentifier: "D", DocLink: "https://docs/d", Service: "EC2"},
	}
}

func newTestService(framework *stubFramework, source *stubCatalogue, logger *zap.Logger) *Service {
	svc := NewService(framework, framework, source, logger)
	svc.now = func() utc.Time {
		return utc.Time{Time: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)}
	}
	return svc
}

func TestService_Compare(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	framework := &stubFramework{rules: sampleFramework()}
	svc := newTestService(framework, &stubCatalogue{rules: sampleCatalogue()}, zap.New(core))

	result, err := svc.Compare(context.Background(), "Operational-Best-Practices-for-HIPAA-Security.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"Operational-Best-Practices-for-HIPAA-Security.yaml"}, framework.calls)
	assert.Equal(t, 1, result.Summary.MatchedCount)
	assert.Equal(t, 2, result.Summary.FrameworkOnlyCount)
	assert.Equal(t, 1, result.Summary.CatalogueOnlyCount)

	finished := logs.FilterMessage("Comparison finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(1), finished[0].ContextMap()["matched"])
}

func TestService_Compare_FrameworkError(t *testing.T) {
	cause := &reconcile.SourceUnavailableError{Source: "pack.yaml", Err: errors.New("timeout")}
	svc := newTestService(&stubFramework{err: cause}, &stubCatalogue{rules: sampleCatalogue()}, nil)

	result, err := svc.Compare(context.Background(), "pack.yaml")
	assert.Nil(t, result)
	assert.True(t, reconcile.IsSourceUnavailable(err))
}

func TestService_Compare_CatalogueError(t *testing.T) {
	cause := &reconcile.MalformedSourceError{Source: "catalogue", Reason: "missing columns"}
	svc := newTestService(&stubFramework{rules: sampleFramework()}, &stubCatalogue{err: cause}, nil)

	_, err := svc.Compare(context.Background(), "pack.yaml")
	require.Error(t, err)
	assert.True(t, reconcile.IsMalformedSource(err))
	assert.Contains(t, err.Error(), "testdata/catalogue.csv")
}

func TestService_Compare_EmptyFramework(t *testing.T) {
	svc := newTestService(&stubFramework{}, &stubCatalogue{rules: sampleCatalogue()}, nil)

	_, err := svc.Compare(context.Background(), "empty.yaml")
	assert.ErrorIs(t, err, reconcile.ErrEmptyInput)
}

func TestService_Report(t *testing.T) {
	svc := newTestService(&stubFramework{rules: sampleFramework()}, &stubCatalogue{rules: sampleCatalogue()}, nil)

	doc, result, err := svc.Report(context.Background(), "pack.yaml", report.FormatHTML)
	require.NoError(t, err)
	require.NotNil(t, result)

	html := string(doc)
	assert.Contains(t, html, "Percentage covered by AMS Config Rules: 33.33%")
	assert.Contains(t, html, "https://packs.example/pack.yaml")
	assert.Contains(t, html, "testdata/catalogue.csv")

	_, _, err = svc.Report(context.Background(), "pack.yaml", "pdf")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported report format"))
}

func TestService_Meta(t *testing.T) {
	svc := newTestService(&stubFramework{}, &stubCatalogue{}, nil)

	meta := svc.Meta("pack.yaml")
	assert.Equal(t, "pack.yaml", meta.SourceName)
	assert.Equal(t, "https://packs.example/pack.yaml", meta.SourceLocation)
	assert.Equal(t, "testdata/catalogue.csv", meta.CatalogueLocation)
	assert.Equal(t, 2026, meta.GeneratedAt.Year())
	assert.NotEmpty(t, meta.RunID)
	assert.NotEqual(t, meta.RunID, svc.Meta("pack.yaml").RunID)

	svc.locator = nil
	assert.Empty(t, svc.Meta("pack.yaml").SourceLocation)
}
