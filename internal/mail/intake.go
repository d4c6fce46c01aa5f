package mail

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhillyerd/enmime"
	"go.uber.org/zap"

	"estimator/internal"
	"estimator/internal/config"
	"estimator/internal/pipeline"
	"estimator/internal/report"
)

// Intake polls a mailbox for incoming engineering reports, runs every
// report-like message through the estimate service, and drops the priced
// reports (text + xlsx) into the output directory.
type Intake struct {
	cfg  config.Config
	conn Connector
	svc  *pipeline.EstimateService
	log  *zap.Logger
}

type CycleResult struct {
	Fetched   int
	Processed int
	Skipped   int
}

func NewIntake(cfg config.Config, conn Connector, svc *pipeline.EstimateService, log *zap.Logger) *Intake {
	return &Intake{cfg: cfg, conn: conn, svc: svc, log: log}
}

func (s *Intake) Run(ctx context.Context) error {
	for {
		if res, err := s.RunCycle(); err != nil {
			s.log.Error("intake cycle failed", zap.Error(err))
		} else if res.Fetched > 0 {
			s.log.Info("intake cycle done",
				zap.Int("fetched", res.Fetched),
				zap.Int("processed", res.Processed),
				zap.Int("skipped", res.Skipped),
			)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.ReportListenerIntervalSec) * time.Second):
		}
	}
}

func (s *Intake) RunCycle() (CycleResult, error) {
	messages, err := s.conn.FetchUnseen(s.cfg.ReportListenerLabel, s.cfg.ReportListenerFetchMax)
	if err != nil {
		return CycleResult{}, err
	}

	res := CycleResult{Fetched: len(messages)}
	for _, msg := range messages {
		processed, err := s.ProcessMessage(msg)
		if err != nil {
			s.log.Error("message processing failed", zap.String("messageId", msg.MessageID), zap.Error(err))
			continue
		}
		if processed {
			res.Processed++
		} else {
			res.Skipped++
		}
	}
	return res, nil
}

// ProcessMessage estimates one raw RFC 5322 message. Returns false when the
// message does not look like an engineering report.
func (s *Intake) ProcessMessage(msg internal.FetchedMailMessage) (bool, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(msg.Raw))
	if err != nil {
		return false, err
	}

	parts := []pipeline.NamedContent{}
	attachmentNames := []string{}
	if strings.TrimSpace(env.Text) != "" {
		parts = append(parts, pipeline.NamedContent{Name: "body.txt", Content: []byte(env.Text)})
	}
	for _, att := range env.Attachments {
		name := strings.TrimSpace(att.FileName)
		if name == "" {
			name = "attachment"
		}
		attachmentNames = append(attachmentNames, name)
		parts = append(parts, pipeline.NamedContent{Name: name, Content: att.Content})
	}

	subject := env.GetHeader("Subject")
	if subject == "" {
		subject = msg.Subject
	}
	detect := DetectReport(subject, env.Text, attachmentNames)
	if !detect.IsReport {
		return false, nil
	}

	est := s.svc.EstimateParts(parts)
	if len(est.Items) == 0 {
		return false, nil
	}
	return true, s.writeReports(msg.MessageID, est)
}

func (s *Intake) writeReports(messageID string, est internal.Estimate) error {
	base := filepath.Join(s.cfg.OutputDir, "intake", sanitizeMessageID(messageID))
	if err := report.ExportXLSX(est, base+".xlsx"); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	return report.WriteText(est, base+".txt")
}

func sanitizeMessageID(input string) string {
	repl := strings.NewReplacer("<", "_", ">", "_", ":", "_", "/", "_", "\\", "_", "|", "_", "?", "_", "*", "_", " ", "_")
	out := repl.Replace(input)
	if len(out) > 120 {
		out = out[:120]
	}
	return out
}
