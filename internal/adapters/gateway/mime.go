package gateway

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
)

// extractTextContent pulls the plain-text content out of a parsed message.
// Multipart messages contribute their text/plain parts; everything else
// (attachments, nested multiparts) is skipped.
func extractTextContent(msg *mail.Message) (string, error) {
	contentType := msg.Header.Get("Content-Type")
	if contentType == "" {
		return readAll(msg.Body)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return readAll(msg.Body)
	}

	boundary, ok := params["boundary"]
	if !ok {
		return readAll(msg.Body)
	}

	var textContent bytes.Buffer
	mr := multipart.NewReader(msg.Body, boundary)
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed part list: keep whatever text was already collected
			break
		}

		partType := strings.ToLower(part.Header.Get("Content-Type"))
		if !strings.Contains(partType, "text/plain") {
			continue
		}
		partBytes, err := io.ReadAll(part)
		if err != nil {
			continue
		}
		textContent.Write(partBytes)
		textContent.WriteString("\n")
	}

	if textContent.Len() == 0 {
		return "[No text content found in multipart message]", nil
	}
	return textContent.String(), nil
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
