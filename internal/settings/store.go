package settings

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-wordclock/internal/model"
)

// Storage is byte-addressable non-volatile memory. *os.File satisfies it.
type Storage interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
}

type syncer interface {
	Sync() error
}

// Size is the length of the stored image in bytes.
func Size() int {
	return binary.Size(Settings{})
}

// Marshal encodes s into its fixed little-endian layout.
func Marshal(s *Settings) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, Size()))
	if err := binary.Write(buf, binary.LittleEndian, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(b []byte) (*Settings, error) {
	if len(b) < Size() {
		return nil, fmt.Errorf("settings image too short: %d < %d", len(b), Size())
	}
	var s Settings
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads the whole image at offset 0. A blank or short store yields
// Defaults.
func Load(st Storage) (*Settings, error) {
	b := make([]byte, Size())
	n, err := st.ReadAt(b, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if n < len(b) || blank(b) {
		log.Warn().Int("bytes", n).Msg("settings storage blank; using defaults")
		return Defaults(), nil
	}
	s, err := Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	Dump(s, zerolog.DebugLevel)
	return s, nil
}

// Save writes the whole image at offset 0 and commits it when the store
// supports Sync.
func Save(st Storage, s *Settings) error {
	b, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if _, err := st.WriteAt(b, 0); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if sy, ok := st.(syncer); ok {
		return sy.Sync()
	}
	return nil
}

// blank reports erased memory (all 0x00 or all 0xFF).
func blank(b []byte) bool {
	zero, ones := true, true
	for _, v := range b {
		zero = zero && v == 0x00
		ones = ones && v == 0xFF
	}
	return zero || ones
}

// Dump logs every setting at the given level.
func Dump(s *Settings, lvl zerolog.Level) {
	ev := log.WithLevel(lvl).
		Uint32("serial", s.Serial).
		Str("face", s.Face()).
		Str("colortype", s.ColorType.String())
	for r := model.Role(0); r < model.RoleCount; r++ {
		ev = ev.Stringer(r.String(), s.Colors[r])
	}
	for i, b := range HourBoundaries {
		ev = ev.Uint8(fmt.Sprintf("h%d", b), s.Hours[i])
	}
	ev.Uint8("ldr", s.Ldr).
		Uint8("ldr_cal", s.LdrCal).
		Bool("auto_ldr", s.AutoLdrEnabled).
		Uint8("auto_ldr_bright", s.AutoLdrBright).
		Uint8("auto_ldr_dark", s.AutoLdrDark).
		Uint8("minute_variant", uint8(s.MinuteVariant)).
		Uint8("second_variant", uint8(s.SecondVariant)).
		Bool("boot_led_sweep", s.BootLedSweep).
		Msg("settings")
}
