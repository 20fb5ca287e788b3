// Package alpide classifies and decodes ALPIDE pixel-chip data words found in
// lane payloads.
//
// A lane stream is a sequence of variable-length words. The first byte of each
// word determines its type:
//
//	Byte pattern  Word              Size
//	------------  ----------------  ----
//	1111 1111     IDLE              1
//	1111 0001     BUSY_ON           1
//	1111 0000     BUSY_OFF          1
//	1010 cccc     CHIP_HEADER       2   (chip id, bunch counter)
//	1011 ffff     CHIP_TRAILER      1   (readout flags)
//	1110 cccc     CHIP_EMPTY_FRAME  2   (chip id, bunch counter)
//	110r rrrr     REGION_HEADER     1   (region 0-31)
//	01ee eeaa     DATA_SHORT        2   (encoder id, 10-bit address)
//	00ee eeaa     DATA_LONG         3   (DATA_SHORT + 7-bit hit map)
//
// Pixel coordinates follow the double-column layout of the chip:
//
//	row    = address >> 1
//	column = region*32 + encoder*2 + ((address & 1) ^ (row & 1))
//
// Bit k of a DATA_LONG hit map marks the pixel at address+k+1 as fired.
package alpide
