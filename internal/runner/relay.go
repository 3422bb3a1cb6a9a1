package runner

import "io"

const relayChunkSize = 4096

type flusher interface {
	Flush() error
}

// Relay reads src to EOF in bounded chunks, accumulating every byte it
// observes. When tee is true each chunk is also written to sink as soon
// as it is read, and the sink is flushed if it supports flushing, so
// output appears live rather than at end-of-stream.
//
// A read or write fault aborts the relay and discards the partial
// accumulation: a faulted relay cannot claim it observed the complete
// stream.
func Relay(src io.Reader, sink io.Writer, tee bool) ([]byte, error) {
	var acc []byte
	chunk := make([]byte, relayChunkSize)
	for {
		n, err := src.Read(chunk)
		if n > 0 {
			if tee {
				if _, werr := sink.Write(chunk[:n]); werr != nil {
					return nil, werr
				}
				if f, ok := sink.(flusher); ok {
					_ = f.Flush()
				}
			}
			acc = append(acc, chunk[:n]...)
		}
		if err == io.EOF {
			return acc, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
