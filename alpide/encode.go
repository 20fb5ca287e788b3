package alpide

// Append helpers build ALPIDE word streams. They are used by simulators and
// tests that feed synthetic data into lanes.

// AppendIdle appends n IDLE words.
func AppendIdle(dst []byte, n int) []byte {
	for range n {
		dst = append(dst, idleByte)
	}

	return dst
}

// AppendChipHeader appends a CHIP_HEADER word.
func AppendChipHeader(dst []byte, chipID, bunchCounter uint8) []byte {
	return append(dst, chipHeaderBits|(chipID&lowNibble), bunchCounter)
}

// AppendChipTrailer appends a CHIP_TRAILER word.
func AppendChipTrailer(dst []byte, readoutFlags uint8) []byte {
	return append(dst, chipTrailerBits|(readoutFlags&lowNibble))
}

// AppendChipEmptyFrame appends a CHIP_EMPTY_FRAME word.
func AppendChipEmptyFrame(dst []byte, chipID, bunchCounter uint8) []byte {
	return append(dst, chipEmptyBits|(chipID&lowNibble), bunchCounter)
}

// AppendRegionHeader appends a REGION_HEADER word.
func AppendRegionHeader(dst []byte, region uint8) []byte {
	return append(dst, regionHeaderBits|(region&regionIDMask))
}

// AppendDataShort appends a DATA_SHORT word.
func AppendDataShort(dst []byte, encoder uint8, address uint16) []byte {
	address &= maxPixelAddress
	return append(dst, dataShortBits|(encoder&lowNibble)<<2|byte(address>>8), byte(address))
}

// AppendDataLong appends a DATA_LONG word.
func AppendDataLong(dst []byte, encoder uint8, address uint16, hitMap uint8) []byte {
	address &= maxPixelAddress
	return append(dst, dataLongBits|(encoder&lowNibble)<<2|byte(address>>8), byte(address), hitMap&hitMapMask)
}

// PixelAddress is the inverse of the pixel mapping for a given region and
// encoder: it returns the encoder and address that produce (column, row).
func PixelAddress(column, row uint16) (region, encoder uint8, address uint16) {
	region = uint8(column / columnsPerRegion)                        //nolint:gosec
	encoder = uint8((column % columnsPerRegion) / columnsPerEncoder) //nolint:gosec
	bit := (column % columnsPerEncoder) ^ (row & 1)
	address = row<<1 | bit

	return region, encoder, address
}
