package domain

// Image is raw image bytes with their MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

func (i Image) IsZero() bool {
	return len(i.Data) == 0
}
