package battery

// Default returns the built-in battery. Each call returns a fresh slice.
func Default() []Case {
	return []Case{
		{Name: "bin byte", Kind: KindBinary, Value: 18, Width: 8, Want: "0b00010010"},
		{Name: "bin half", Kind: KindBinary, Value: 65400, Width: 16, Want: "0b1111111101111000"},
		{Name: "bin word all ones", Kind: KindBinary, Value: 0xFFFFFFFF, Width: 32, Want: "0b11111111111111111111111111111111"},
		{Name: "bin single bit", Kind: KindBinary, Value: 1, Width: 1, Want: "0b1"},
		{Name: "bin overflow", Kind: KindBinary, Value: 256, Width: 8, WantErr: NameWidthOverflow},
		{Name: "bin short buffer", Kind: KindBinary, Value: 18, Width: 8, Capacity: 10, WantErr: NameBufferTooSmall},
		{Name: "bin zero width", Kind: KindBinary, Value: 0, Width: 0, WantErr: NameInvalidWidth},

		{Name: "sbin minus one nibble", Kind: KindSignedBinary, Value: -1, Width: 4, Want: "0b1111"},
		{Name: "sbin min byte", Kind: KindSignedBinary, Value: -128, Width: 8, Want: "0b10000000"},
		{Name: "sbin positive", Kind: KindSignedBinary, Value: 18, Width: 8, Want: "0b00010010"},
		{Name: "sbin short buffer", Kind: KindSignedBinary, Value: -1, Width: 32, Capacity: 34, WantErr: NameBufferTooSmall},

		{Name: "hex byte", Kind: KindHex, Value: 18, Width: 8, Want: "0x12"},
		{Name: "hex byte in half", Kind: KindHex, Value: 18, Width: 16, Want: "0x0012"},
		{Name: "hex half", Kind: KindHex, Value: 65400, Width: 16, Want: "0xFF78"},
		{Name: "hex word", Kind: KindHex, Value: 0xDEADBEEF, Width: 32, Want: "0xDEADBEEF"},
		{Name: "hex masks wide value", Kind: KindHex, Value: 0x1FF, Width: 8, Want: "0xFF"},
		{Name: "hex bad width", Kind: KindHex, Value: 18, Width: 12, WantErr: NameInvalidWidth},
		{Name: "hex short buffer", Kind: KindHex, Value: 18, Width: 8, Capacity: 4, WantErr: NameBufferTooSmall},

		{Name: "bit set 0", Kind: KindBit, Value: 0, Bit: 0, Op: "set", WantValue: 1},
		{Name: "bit set 3", Kind: KindBit, Value: 0, Bit: 3, Op: "set", WantValue: 8},
		{Name: "bit toggle 5", Kind: KindBit, Value: 29495, Bit: 5, Op: "toggle", WantValue: 29463},
		{Name: "bit clear 31", Kind: KindBit, Value: 0xFFFFFFFF, Bit: 31, Op: "clear", WantValue: 0x7FFFFFFF},
		{Name: "bit set to all ones", Kind: KindBit, Value: 0x7FFFFFFF, Bit: 31, Op: "set", WantValue: 0xFFFFFFFF},
		{Name: "bit index out of range", Kind: KindBit, Value: 0, Bit: 32, Op: "set", WantErr: NameInvalidBitIndex},
		{Name: "bit unknown op", Kind: KindBit, Value: 0, Bit: 0, Op: "flip", WantErr: NameInvalidOperation},

		{Name: "field start 6", Kind: KindField, Value: 29495, Start: 6, WantValue: 4},
		{Name: "field start 7", Kind: KindField, Value: 29495, Start: 7, WantValue: 6},
		{Name: "field top", Kind: KindField, Value: 0xFFFFFFFF, Start: 29, WantValue: 7},
		{Name: "field start too high", Kind: KindField, Value: 0, Start: 30, WantErr: NameInvalidStart},
		{Name: "field high half", Kind: KindField, Value: 0xDEADBEEF, Start: 16, Bits: 16, WantValue: 0xDEAD},

		{Name: "dump empty", Kind: KindDump, Data: "", Want: ""},
		{Name: "dump two bytes", Kind: KindDump, Data: "00 ff", Want: "00000000  00 FF\n"},
		{
			Name: "dump two rows",
			Kind: KindDump,
			Data: "000102030405060708090a0b0c0d0e0f 1011",
			Want: "00000000  00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F\n00000010  10 11\n",
		},
		{Name: "dump short buffer", Kind: KindDump, Data: "00ff", Capacity: 16, WantErr: NameBufferTooSmall},
	}
}
