package player

// encodePCM converts decoded stereo float frames into interleaved signed
// 16-bit little-endian PCM, the format the output device is opened with.
// dst is reused across calls; the returned slice aliases it.
func encodePCM(frames [][2]float64, dst []byte) []byte {
	need := len(frames) * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]
	for i, frame := range frames {
		l := pcm16(frame[0])
		r := pcm16(frame[1])
		dst[i*4+0] = byte(l)
		dst[i*4+1] = byte(l >> 8)
		dst[i*4+2] = byte(r)
		dst[i*4+3] = byte(r >> 8)
	}
	return dst
}

func pcm16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
