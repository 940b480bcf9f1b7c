/*

Package ausar is a read-only decoder for the archive-and-tag file format
used to package shipping assets ("modules") by a Slipspace-family game
engine.

This is not a full implementation. It focuses on the binary decoding
pipeline: parsing a module's header, file-entry table, string table,
resource-index table and block table; resolving tag names across
recursive parent/child relationships; assembling (and decompressing)
a file's payload; parsing the per-tag header into a navigable struct
graph; and interpreting a caller-declared layout to materialize fields,
nested blocks, resources and data references out of that graph.

The actual Kraken-family decompression algorithm is treated as an
opaque external routine (see the internal/kraken package) - this
package does not implement it, any more than it implements archive
creation, mutation, or cross-archive dependency resolution.

Information sources:

- infinite-rs: https://github.com/TheHaloArchive/infinite-rs, the Rust
  deserializer this package's wire-format understanding is grounded on.

- libinfinite: https://github.com/Coreforge/libInfinite

- AusarDocs: https://github.com/ElDewrito/AusarDocs

- Kraken (WolvenKit reimplementation): https://github.com/WolvenKit/kraken

Format of a module file, leaves first:

	Header (fixed size)
	File-entry table (file_count entries, version-dependent layout)
	String table (strings_size bytes, versions <= 52 only)
	Resource index table (resource_count x uint32)
	Block table (block_count x 20 bytes)
	4 KiB-aligned gap
	Payload data (compressed/uncompressed sub-blocks per file)

A companion "HD1" side-archive, when present, shares this layout and
stores higher-resolution variants of a subset of payloads.
*/
package ausar
