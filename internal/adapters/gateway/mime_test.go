package gateway

import (
	"net/mail"
	"strings"
	"testing"
)

func parseMessage(t *testing.T, raw string) *mail.Message {
	t.Helper()
	msg, err := mail.ReadMessage(strings.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestExtractTextContentPlain(t *testing.T) {
	msg := parseMessage(t, "From: a@example.com\r\nSubject: hi\r\n\r\nplain body here\r\n")

	text, err := extractTextContent(msg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "plain body here") {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractTextContentMultipart(t *testing.T) {
	raw := "From: a@example.com\r\n" +
		"Content-Type: multipart/alternative; boundary=BOUNDARY\r\n" +
		"\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		"the text part\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: text/html; charset=utf-8\r\n" +
		"\r\n" +
		"<p>the html part</p>\r\n" +
		"--BOUNDARY--\r\n"

	text, err := extractTextContent(parseMessage(t, raw))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "the text part") {
		t.Errorf("expected the plain part, got %q", text)
	}
	if strings.Contains(text, "html part") {
		t.Errorf("html part must be skipped, got %q", text)
	}
}

func TestExtractTextContentMultipartWithoutText(t *testing.T) {
	raw := "From: a@example.com\r\n" +
		"Content-Type: multipart/mixed; boundary=BOUNDARY\r\n" +
		"\r\n" +
		"--BOUNDARY\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"\r\n" +
		"binarybits\r\n" +
		"--BOUNDARY--\r\n"

	text, err := extractTextContent(parseMessage(t, raw))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "No text content") {
		t.Errorf("expected the placeholder, got %q", text)
	}
}
