/*
	This hash table implementation uses a closed hashing (open addressing) technique with
	a fixed capacity and one of two probing strategies for resolving hash collisions:
	linear probing and double hashing. It exists to compare how many probes each
	strategy spends as the table fills up. More information about both techniques
	can be found in the links provided below:
	01) https://en.wikipedia.org/wiki/Open_addressing
	02) https://en.wikipedia.org/wiki/Linear_probing
	03) https://en.wikipedia.org/wiki/Double_hashing
	04) https://www.pvk.ca/Blog/numerical_experiments_in_hashing.html
	05) https://cs.uwaterloo.ca/research/tr/1986/CS-86-14.pdf
	The basic principal is:
	-----------------------
	1) Calculate the raw hash of the key (the caller supplies it as an int64)
	2) h1 = hash mod capacity is the first slot, for double hashing the step is
	   h2 = 1 + (hash mod (capacity-2)), for linear probing the step is 1
	3) Probe attempt i looks at (h1 + i*step) mod capacity, for i in [0, capacity)
	4) Inserts take the first reusable slot (never used, or tombstoned) unless the
	   key already lives further down the sequence, in which case its frequency is
	   bumped instead
	5) Deletes leave a tombstone behind so lookups keep probing past the hole and
	   only stop at a slot that was never used
	6) Nothing ever resizes. When every attempt is spent the insert fails with
	   ErrTableFull. Capacity should be a (twin) prime so double hashing visits
	   every slot once before repeating, see pkg/prime
*/
package openaddr
