// Package frame serializes waveforms into a compact, self-describing binary
// container for transport to renderers or storage.
//
// A frame is a 24-byte Header followed by the payload. The payload stores
// every sample as a 2-bit symbol packed into 64-bit words, optionally
// compressed with one of the codecs from the compress package. The header
// carries an xxHash64 of the uncompressed payload so corruption is detected
// on Unmarshal.
//
// # Usage
//
//	w := encoding.EncodeManchester(seq)
//	data, err := frame.Marshal(format.SchemeManchester, w,
//	    frame.WithCompression(format.CompressionZstd),
//	)
//
//	f, err := frame.Unmarshal(data)
//	fmt.Println(f.Header.Scheme, f.Waveform.Cells())
//
// Frames written back to back with Write are read with UnmarshalNext, which
// returns the bytes after each frame.
package frame
