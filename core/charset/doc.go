// Package charset infers the text encoding of raw bytes.
//
// Detection works on a bounded sample (DefaultSampleSize bytes) so its cost
// does not grow with the file. Charset-defining bytes that lie beyond the
// sample can cause a wrong guess; a wrong UTF-8 guess is caught when the full
// payload is decoded.
//
// # Usage
//
//	guess, err := charset.Detect(data[:min(len(data), charset.DefaultSampleSize)])
//	if err != nil {
//	    return err
//	}
//	text, err := guess.Decode(data)
package charset
