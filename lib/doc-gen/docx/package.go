package docx

import (
	"archive/zip"
	"bytes"

	"github.com/pkg/errors"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// pack assembles a complete OOXML package around the document part.
func pack(documentXML []byte) ([]byte, error) {
	var out bytes.Buffer
	writer := zip.NewWriter(&out)

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(relsXML)},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		dst, err := writer.Create(part.name)
		if err != nil {
			return nil, errors.Wrapf(err, "create %s", part.name)
		}
		if _, err := dst.Write(part.content); err != nil {
			return nil, errors.Wrapf(err, "write %s", part.name)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close docx package")
	}
	return out.Bytes(), nil
}
