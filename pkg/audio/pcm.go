package audio

// DecodePCM16 converts little-endian 16-bit PCM bytes to float32 amplitude
// samples in [-1, 1]. A trailing odd byte is ignored.
func DecodePCM16(data []byte) []float32 {
	out := make([]float32, len(data)/2)
	for i := range out {
		s := int16(data[i*2]) | int16(data[i*2+1])<<8
		out[i] = float32(s) / 32768
	}
	return out
}

// MonoFromStereo averages interleaved stereo samples down to mono.
func MonoFromStereo(samples []float32) []float32 {
	out := make([]float32, len(samples)/2)
	for i := range out {
		out[i] = (samples[i*2] + samples[i*2+1]) / 2
	}
	return out
}
