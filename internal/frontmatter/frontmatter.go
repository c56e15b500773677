// Package frontmatter splits and assembles Markdown documents that start with
// a `---` delimited YAML block.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

const delimiter = "---\n"

// Split separates YAML frontmatter from the Markdown body. CRLF line endings
// are normalized to LF and a single blank line after the closing delimiter is
// dropped from the body.
//
// If the document does not start with a YAML frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter, body []byte, had bool, err error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte(delimiter)) {
		return nil, content, false, nil
	}

	rest := content[len(delimiter):]
	if bytes.HasPrefix(rest, []byte(delimiter)) {
		return []byte{}, trimBlankLine(rest[len(delimiter):]), true, nil
	}

	idx := bytes.Index(rest, []byte("\n"+delimiter))
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+1], trimBlankLine(rest[idx+1+len(delimiter):]), true, nil
}

// Join assembles a document from raw frontmatter and body, separated by a
// blank line.
func Join(frontmatter, body []byte) []byte {
	out := make([]byte, 0, 2*len(delimiter)+len(frontmatter)+1+len(body))
	out = append(out, delimiter...)
	out = append(out, frontmatter...)
	out = append(out, delimiter...)
	out = append(out, '\n')
	out = append(out, body...)
	return out
}

// Marshal encodes v as YAML with two-space indentation, without delimiters.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse splits content and decodes its frontmatter into v. Documents without
// frontmatter leave v untouched.
func Parse(content []byte, v any) (body []byte, err error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return nil, err
	}
	if !had || len(raw) == 0 {
		return body, nil
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return body, nil
}

func trimBlankLine(body []byte) []byte {
	return bytes.TrimPrefix(body, []byte("\n"))
}
