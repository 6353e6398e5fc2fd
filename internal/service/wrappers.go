package service

// PDFDecryptServiceWrapper defines middleware composition for
// PDFDecryptService. Implementations wrap an existing PDFDecryptService to add
// behavior such as validation or metrics.
type PDFDecryptServiceWrapper interface {
	Wrap(PDFDecryptService) PDFDecryptService // returns a decorated PDFDecryptService applying additional behavior
}
