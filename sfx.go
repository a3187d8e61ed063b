package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"

	"github.com/Ding-Daniel/osuclone/internal/game"
)

const sampleRate = 44100

// soundBank holds one synthesized feedback blip per judgement tier: a short
// sine burst under an exponential envelope, higher pitched the better the
// tier. Everything is generated up front; playback just wraps a reader.
type soundBank struct {
	ctx     *audio.Context
	samples map[game.Judgement][]byte
}

func newSoundBank() *soundBank {
	return &soundBank{
		ctx: audio.NewContext(sampleRate),
		samples: map[game.Judgement][]byte{
			game.JudgementPerfect: synthBlip(1320, 0.09),
			game.JudgementGood:    synthBlip(880, 0.09),
			game.JudgementOk:      synthBlip(660, 0.09),
			game.JudgementMiss:    synthBlip(180, 0.22),
		},
	}
}

// synthBlip renders 16-bit little endian stereo PCM.
func synthBlip(freq, duration float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		env := math.Exp(-6 * t / duration)
		value := int16(math.Sin(2*math.Pi*freq*t) * env * 12000)
		binary.LittleEndian.PutUint16(data[i*4:], uint16(value))
		binary.LittleEndian.PutUint16(data[i*4+2:], uint16(value))
	}
	return data
}

func (b *soundBank) Play(j game.Judgement) {
	data, ok := b.samples[j]
	if !ok {
		return
	}
	player, err := audio.NewPlayer(b.ctx, newPCMStream(data))
	if nil != err {
		log.Warn().Err(err).Msg("unable to play feedback blip")
		return
	}
	player.Play()
}

type pcmStream struct {
	data []byte
	pos  int64
}

func newPCMStream(data []byte) *pcmStream {
	return &pcmStream{data: data}
}

func (p *pcmStream) Read(b []byte) (int, error) {
	if p.pos >= int64(len(p.data)) {
		return 0, io.EOF
	}
	n := copy(b, p.data[p.pos:])
	p.pos += int64(n)
	return n, nil
}

func (p *pcmStream) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = p.pos + offset
	case io.SeekEnd:
		newPos = int64(len(p.data)) + offset
	default:
		return p.pos, fmt.Errorf("invalid whence: %d", whence)
	}
	if newPos < 0 {
		return p.pos, fmt.Errorf("invalid seek position")
	}
	p.pos = newPos
	return p.pos, nil
}
