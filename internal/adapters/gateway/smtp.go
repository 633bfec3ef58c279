package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-smtp"
	"go.uber.org/zap"

	"github.com/safeguard/risk-filter/internal/core"
	"github.com/safeguard/risk-filter/internal/service"
)

// SMTPGateway runs the risk filter as an SMTP content filter: messages come
// in over SMTP, get scored, and are forwarded upstream with X-Risk-* headers
// stamped on. Messages at or above the reject threshold are bounced.
type SMTPGateway struct {
	service         *service.MessageRiskService
	logger          *zap.Logger
	listenAddr      string
	server          *smtp.Server
	rejectThreshold int
	verdictHeader   string
	scoreHeader     string
	reasonHeader    string
	upstreamAddr    string
	upstreamPort    int
	upstreamEnabled bool
}

// NewSMTPGateway creates a new SMTP gateway. A rejectThreshold of 0 disables
// rejection: everything is forwarded with headers only.
func NewSMTPGateway(
	svc *service.MessageRiskService,
	logger *zap.Logger,
	listenAddr string,
	rejectThreshold int,
	verdictHeader string,
	scoreHeader string,
	reasonHeader string,
	upstreamAddr string,
	upstreamPort int,
	upstreamEnabled bool,
) *SMTPGateway {
	return &SMTPGateway{
		service:         svc,
		logger:          logger,
		listenAddr:      listenAddr,
		rejectThreshold: rejectThreshold,
		verdictHeader:   verdictHeader,
		scoreHeader:     scoreHeader,
		reasonHeader:    reasonHeader,
		upstreamAddr:    upstreamAddr,
		upstreamPort:    upstreamPort,
		upstreamEnabled: upstreamEnabled,
	}
}

// Start starts the SMTP server
func (g *SMTPGateway) Start() error {
	g.server = smtp.NewServer(&smtpBackend{gateway: g})

	g.server.Addr = g.listenAddr
	g.server.Domain = "localhost"
	g.server.ReadTimeout = 30 * time.Second
	g.server.WriteTimeout = 30 * time.Second
	g.server.MaxMessageBytes = 30 * 1024 * 1024 // 30MB
	g.server.MaxRecipients = 50
	g.server.AllowInsecureAuth = true

	g.logger.Info("SMTP gateway starting", zap.String("address", g.listenAddr))

	go func() {
		if err := g.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				g.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP server
func (g *SMTPGateway) Stop() error {
	if g.server != nil {
		return g.server.Close()
	}
	return nil
}

// sendUpstream forwards the stamped message to the upstream MTA
func (g *SMTPGateway) sendUpstream(sender string, recipients []string, data []byte) error {
	addr := fmt.Sprintf("%s:%d", g.upstreamAddr, g.upstreamPort)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to upstream MTA: %w", err)
	}
	if err := conn.SetDeadline(time.Now().Add(30 * time.Second)); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	c := smtp.NewClient(conn)
	defer c.Close()

	if err := c.Hello(hostname); err != nil {
		return fmt.Errorf("EHLO failed: %w", err)
	}
	if err := c.Mail(sender, nil); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}

	recipientOK := false
	for _, recipient := range recipients {
		if err := c.Rcpt(recipient, nil); err != nil {
			g.logger.Warn("RCPT TO failed for recipient",
				zap.String("recipient", recipient),
				zap.Error(err))
			continue
		}
		recipientOK = true
	}
	if !recipientOK {
		return fmt.Errorf("all recipients were rejected")
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA command failed: %w", err)
	}
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return fmt.Errorf("failed to send message data: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	if err := c.Quit(); err != nil {
		// The message is already accepted upstream at this point
		g.logger.Warn("QUIT command failed", zap.Error(err))
	}
	return nil
}

// smtpBackend implements the go-smtp Backend interface
type smtpBackend struct {
	gateway *SMTPGateway
}

func (b *smtpBackend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &smtpSession{
		gateway:    b.gateway,
		recipients: make([]string, 0),
	}, nil
}

// smtpSession implements the go-smtp Session interface
type smtpSession struct {
	gateway    *SMTPGateway
	sender     string
	recipients []string
}

func (s *smtpSession) Reset() {
	s.sender = ""
	s.recipients = make([]string, 0)
}

func (s *smtpSession) AuthPlain(_ []byte) error {
	return smtp.ErrAuthUnsupported
}

func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	s.sender = from
	return nil
}

func (s *smtpSession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.recipients = append(s.recipients, to)
	return nil
}

// Data scores the incoming message and either rejects it or forwards it
// upstream with verdict headers prepended.
func (s *smtpSession) Data(r io.Reader) error {
	rawData, err := io.ReadAll(r)
	if err != nil {
		s.gateway.logger.Error("Failed to read message data", zap.Error(err))
		return err
	}

	msg, err := mail.ReadMessage(bytes.NewReader(rawData))
	if err != nil {
		s.gateway.logger.Error("Failed to parse message", zap.Error(err))
		return err
	}

	textContent, err := extractTextContent(msg)
	if err != nil {
		s.gateway.logger.Error("Failed to extract text content", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	verdict, analysisErr := s.gateway.service.AnalyzeMessage(ctx, &core.Message{
		Body:   textContent,
		Sender: s.sender,
		Source: "smtp",
	})
	if analysisErr != nil {
		s.gateway.logger.Error("Failed to analyze message",
			zap.Error(analysisErr),
			zap.String("sender", s.sender))

		// Fail open: an analysis error never loses mail
		verdict = &core.RiskVerdict{
			Verdict:    "Unknown",
			RiskScore:  0,
			Reasons:    []string{fmt.Sprintf("Error during analysis: %v", analysisErr)},
			AnalyzedAt: time.Now(),
		}
	}

	if analysisErr == nil && s.gateway.rejectThreshold > 0 && verdict.RiskScore >= s.gateway.rejectThreshold {
		s.gateway.logger.Info("Rejecting high-risk message",
			zap.String("from", s.sender),
			zap.String("verdict", verdict.Verdict),
			zap.Int("risk_score", verdict.RiskScore))
		return fmt.Errorf("550 Rejected as high risk (verdict: %s, score: %d)", verdict.Verdict, verdict.RiskScore)
	}

	stamped := s.stampHeaders(rawData, msg, verdict, analysisErr)

	if s.gateway.upstreamEnabled {
		if err := s.gateway.sendUpstream(s.sender, s.recipients, stamped); err != nil {
			s.gateway.logger.Error("Failed to forward message upstream",
				zap.Error(err),
				zap.String("sender", s.sender))
			return err
		}
	} else {
		s.gateway.logger.Warn("Upstream forwarding disabled, message dropped after scoring")
	}

	s.gateway.logger.Info("Processed message",
		zap.String("from", s.sender),
		zap.String("verdict", verdict.Verdict),
		zap.Int("risk_score", verdict.RiskScore))

	return nil
}

// stampHeaders rebuilds the message with the verdict headers first, the
// original headers after, and the raw body untouched so MIME structure and
// attachments survive.
func (s *smtpSession) stampHeaders(rawData []byte, msg *mail.Message, verdict *core.RiskVerdict, analysisErr error) []byte {
	var out bytes.Buffer

	fmt.Fprintf(&out, "%s: %s\r\n", s.gateway.verdictHeader, verdict.Verdict)
	fmt.Fprintf(&out, "%s: %d\r\n", s.gateway.scoreHeader, verdict.RiskScore)
	fmt.Fprintf(&out, "%s: %s\r\n", s.gateway.reasonHeader, strings.Join(verdict.Reasons, "; "))
	if analysisErr != nil {
		fmt.Fprintf(&out, "X-Risk-Analysis-Error: %s\r\n", analysisErr.Error())
	}

	for key, values := range msg.Header {
		for _, value := range values {
			fmt.Fprintf(&out, "%s: %s\r\n", key, value)
		}
	}
	out.WriteString("\r\n")

	if idx := bytes.Index(rawData, []byte("\r\n\r\n")); idx != -1 {
		out.Write(rawData[idx+4:])
	} else if idx := bytes.Index(rawData, []byte("\n\n")); idx != -1 {
		out.Write(rawData[idx+2:])
	}

	return out.Bytes()
}

func (s *smtpSession) Logout() error {
	return nil
}
