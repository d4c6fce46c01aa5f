package mail

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"estimator/internal"
	"estimator/internal/config"
	"estimator/internal/pipeline"
)

type fakeConnector struct {
	messages []internal.FetchedMailMessage
	err      error
}

func (f *fakeConnector) FetchUnseen(label string, max int) ([]internal.FetchedMailMessage, error) {
	return f.messages, f.err
}

var testCatalog = []internal.PriceEntry{
	{Key: "speed breaker", UnitPrice: 5000, Source: "CPWD SOR 2025"},
	{Key: "road signage", UnitPrice: 2000, Source: "GeM portal 2025"},
	{Key: "guard rail", UnitPrice: 1200, Source: "MoRTH rate list"},
}

const reportEML = "From: engineer@example.com\r\n" +
	"To: intake@example.com\r\n" +
	"Subject: Road Safety Audit - corrective interventions\r\n" +
	"Message-ID: <m1@example.com>\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: multipart/mixed; boundary=b1\r\n" +
	"\r\n" +
	"--b1\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Speed Breaker - 10\r\n" +
	"Road Signage: 15 - IRC 67\r\n" +
	"--b1\r\n" +
	"Content-Type: text/csv; name=\"items.csv\"\r\n" +
	"Content-Disposition: attachment; filename=\"items.csv\"\r\n" +
	"\r\n" +
	"name,quantity,clause\r\n" +
	"Guard Rail,25,IRC 119\r\n" +
	"--b1--\r\n"

const newsletterEML = "From: news@example.com\r\n" +
	"To: intake@example.com\r\n" +
	"Subject: Weekly company update\r\n" +
	"Message-ID: <n1@example.com>\r\n" +
	"MIME-Version: 1.0\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Hello all, here is what happened this week at the office.\r\n"

func newTestIntake(t *testing.T, conn Connector) *Intake {
	t.Helper()
	cfg := config.Config{
		OutputDir:                 t.TempDir(),
		ReportListenerLabel:       "INBOX",
		ReportListenerFetchMax:    10,
		ReportListenerIntervalSec: 1,
	}
	svc := pipeline.NewEstimateService(testCatalog)
	return NewIntake(cfg, conn, svc, zap.NewNop())
}

func TestProcessMessageReport(t *testing.T) {
	intake := newTestIntake(t, &fakeConnector{})

	processed, err := intake.ProcessMessage(internal.FetchedMailMessage{
		MessageID: "<m1@example.com>",
		Subject:   "Road Safety Audit - corrective interventions",
		Raw:       []byte(reportEML),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !processed {
		t.Fatal("processed=false")
	}

	base := filepath.Join(intake.cfg.OutputDir, "intake", sanitizeMessageID("<m1@example.com>"))
	for _, path := range []string{base + ".xlsx", base + ".txt"} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing report file %s: %v", path, err)
		}
	}

	text, err := os.ReadFile(base + ".txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Speed Breaker", "Road Signage", "Guard Rail", "Overall Total"} {
		if !strings.Contains(string(text), want) {
			t.Errorf("text report missing %q", want)
		}
	}
}

func TestProcessMessageNewsletter(t *testing.T) {
	intake := newTestIntake(t, &fakeConnector{})

	processed, err := intake.ProcessMessage(internal.FetchedMailMessage{
		MessageID: "<n1@example.com>",
		Subject:   "Weekly company update",
		Raw:       []byte(newsletterEML),
	})
	if err != nil {
		t.Fatal(err)
	}
	if processed {
		t.Fatal("processed=true for newsletter")
	}

	entries, err := os.ReadDir(intake.cfg.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("output dir not empty: %v", entries)
	}
}

func TestRunCycle(t *testing.T) {
	conn := &fakeConnector{messages: []internal.FetchedMailMessage{
		{MessageID: "<m1@example.com>", Subject: "Road Safety Audit", Raw: []byte(reportEML)},
		{MessageID: "<n1@example.com>", Subject: "Weekly company update", Raw: []byte(newsletterEML)},
	}}
	intake := newTestIntake(t, conn)

	res, err := intake.RunCycle()
	if err != nil {
		t.Fatal(err)
	}
	if res.Fetched != 2 || res.Processed != 1 || res.Skipped != 1 {
		t.Fatalf("res=%+v", res)
	}
}

func TestSanitizeMessageID(t *testing.T) {
	got := sanitizeMessageID("<CA+abc/def:1@mail.example.com>")
	if strings.ContainsAny(got, "<>:/\\|?* ") {
		t.Fatalf("unsafe characters left in %q", got)
	}
}
