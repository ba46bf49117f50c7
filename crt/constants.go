package crt

// CharSumHash - Internal hash function summing the character codes of the key modulo the table size.
// This is the default.
const CharSumHash int = 0

// CRC32Hash - Internal hash function using crc32.ChecksumIEEE over the key modulo the table size.
const CRC32Hash int = 1
