package settlement

// SubmitRequest is a print job as submitted by a caller. The file has
// already been stored elsewhere; name and type are opaque descriptors.
type SubmitRequest struct {
	StudentID uint
	FileName  string
	FileType  string
	Copies    int
	Pages     int
	PaperSize string
	PrintType string
	Duplex    bool
}
