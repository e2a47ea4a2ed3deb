package tone

import (
	"fmt"
	"strings"
)

// ----- Frequency Table ----- //

// Tones maps note names to frequencies in Hz. Flats are spelled with '♭'.
var Tones = map[string]float64{
	"C0": 16.35, "D♭0": 17.32, "D0": 18.35, "E♭0": 19.45, "E0": 20.60,
	"F0": 21.83, "G♭0": 23.12, "G0": 24.50, "A♭0": 25.96, "A0": 27.50,
	"B♭0": 29.14, "B0": 30.87, "C1": 32.70, "D♭1": 34.65, "D1": 36.71,
	"E♭1": 38.89, "E1": 41.20, "F1": 43.65, "G♭1": 46.25, "G1": 49.00,
	"A♭1": 51.91, "A1": 55.00, "B♭1": 58.27, "B1": 61.74, "C2": 65.41,
	"D♭2": 69.30, "D2": 73.42, "E♭2": 77.78, "E2": 82.41, "F2": 87.31,
	"G♭2": 92.50, "G2": 98.00, "A♭2": 103.83, "A2": 110.00, "B♭2": 116.54,
	"B2": 123.47, "C3": 130.81, "D♭3": 138.59, "D3": 146.83, "E♭3": 155.56,
	"E3": 164.81, "F3": 174.61, "G♭3": 185.00, "G3": 196.00, "A♭3": 207.65,
	"A3": 220.00, "B♭3": 233.08, "B3": 246.94, "C4": 261.63, "D♭4": 277.18,
	"D4": 293.66, "E♭4": 311.13, "E4": 329.63, "F4": 349.23, "G♭4": 369.99,
	"G4": 392.00, "A♭4": 415.30, "A4": 440.00, "B♭4": 466.16, "B4": 493.88,
	"C5": 523.25, "D♭5": 554.37, "D5": 587.33, "E♭5": 622.25, "E5": 659.25,
	"F5": 698.46, "G♭5": 739.99, "G5": 783.99, "A♭5": 830.61, "A5": 880.00,
	"B♭5": 932.33, "B5": 987.77, "C6": 1046.5, "D♭6": 1108.73, "D6": 1174.66,
	"E♭6": 1244.51, "E6": 1318.51, "F6": 1396.91, "G♭6": 1479.98,
	"G6": 1567.98, "A♭6": 1661.22, "A6": 1760.00, "B♭6": 1864.66,
	"B6": 1975.53, "C7": 2093.00, "D♭7": 2217.46, "D7": 2349.32,
	"E♭7": 2489.02, "E7": 2637.02, "F7": 2793.83, "G♭7": 2959.96,
	"G7": 3135.96, "A♭7": 3322.44, "A7": 3520.00, "B♭7": 3729.31,
	"B7": 3951.07, "C8": 4186.01, "D♭8": 4434.92, "D8": 4698.63,
	"E♭8": 4978.03, "E8": 5274.04, "F8": 5587.65, "G♭8": 5919.91,
	"G8": 6271.93, "A♭8": 6644.88, "A8": 7040, "B♭8": 7458.62,
	"B8": 7902.13,
}

var noteNames = [12]string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}

// Frequency looks up a note name such as "A4" or "E♭6". An ASCII 'b'
// directly after the letter is read as a flat, so "Eb6" is "E♭6".
func Frequency(name string) (float64, error) {
	if freq, ok := Tones[name]; ok {
		return freq, nil
	}
	if len(name) > 1 && name[1] == 'b' {
		if freq, ok := Tones[name[:1]+"♭"+name[2:]]; ok {
			return freq, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNote, strings.TrimSpace(name))
}

// NoteName converts a MIDI note number to its table name (60 is "C4").
func NoteName(midiNote int) (string, error) {
	if midiNote < 0 {
		return "", fmt.Errorf("%w: midi note %d", ErrUnknownNote, midiNote)
	}
	name := noteNames[midiNote%12] + fmt.Sprint(midiNote/12-1)
	if _, ok := Tones[name]; !ok {
		return "", fmt.Errorf("%w: midi note %d", ErrUnknownNote, midiNote)
	}
	return name, nil
}
