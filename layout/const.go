package layout

const (
	// DetectHeaderSize is the size of the envelope detect header that
	// may precede compressed prefetch content.
	DetectHeaderSize = 8

	// HeaderSize is the size of the outer prefetch header. The
	// version-specific file-information block starts at this offset in
	// every known format version.
	HeaderSize = 84

	// NameSize is the size in bytes of the UTF-16 executable name
	// buffer inside the outer header.
	NameSize = 60
)

// CompressedSignature identifies the LZXPRESS-Huffman compressed
// envelope ("MAM\x04"). It is checked against the first four bytes of
// the file, before the outer header is read.
var CompressedSignature = [4]byte{'M', 'A', 'M', 0x04}

// Signature is the outer header signature of raw prefetch content
// ("SCCA"). The field is decoded but deliberately not validated;
// see Header.
var Signature = [4]byte{'S', 'C', 'C', 'A'}
