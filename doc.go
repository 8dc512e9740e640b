/*
Package scoredb implements contract state containers on top of an ordered
key-value store (Bolt, LevelDB or memory).

We implement:

1. ArrayDB, an ordered list with a persisted length.

2. DictDB, a map from logical keys to values, nestable to a fixed depth.

3. VarDB, a single named value.

4. PutToDB and GetFromDB, storing whole maps and lists at once.

Logical keys are integers, strings, addresses and byte strings. Values add
booleans. Values carry no type tag; the reader names the type.

# Technical Details

**Regions.**
Every container owns a region, a key prefix no other container can produce.
A Tx hands out a root View per owner address; containers opened on it prefix
their region with a container tag (0x00 array, 0x01 dict, 0x02 var).
Containers nested inside a region use their key alone. All VarDBs of an owner
share the 0x02 region.

**Key schemes.**
Two key encodings coexist in one store:

1. V1 stores raw key bytes joined by '|'. It is the legacy format and can
alias when keys contain the separator.

2. V2 wraps every key part into an RLP byte string frame, so parts concatenate
unambiguously.

Each region is resolved to one scheme the first time a Tx opens it: V1 if any
V1 key exists under it, otherwise V2 if any V2 key does, otherwise the
configured write scheme. Everything below a region uses the same scheme, so
legacy data keeps being read and written in V1 while new regions use V2.

## Physical layout

**Owner root**: V1 `addr|`, V2 `frame(addr)`.

**ArrayDB**: element `i` at `region + enc(i)`; length at `region + "size"` (V1)
or at the region prefix itself (V2).

**DictDB**: value at `region + enc(key)`; depth N adds N-1 nested regions.

**VarDB**: value at `owner + 0x02 + enc(key)`.

**Integers** are minimal big-endian two's complement; zero is a single 0x00
byte. Booleans are the integers 1 and 0. Addresses are 20 bytes for accounts
and 0x01 followed by 20 bytes for contracts.
*/
package scoredb
