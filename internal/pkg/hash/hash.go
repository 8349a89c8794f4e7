package hash

import (
	"hash/fnv"
	"math/bits"
)

const (
	hashMask int64 = 0x7FFFFFFFFFFFFFFF
	number13       = 13
	number29       = 29
	number31       = 31
)

// Hash 基于 scope 和 key 生成64位哈希值，scope 通常是邮件类型，key 通常是收件人
// 使用 FNV-1a 再做一次位混合，返回值保证非负
func Hash(scope, key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(scope))
	// 分隔符，避免 ("ab","c") 和 ("a","bc") 撞在一起
	h.Write([]byte{0})
	h.Write([]byte(key))
	sum := h.Sum64()

	salt := fnv.New64a()
	salt.Write([]byte(scope))
	sum = mixHash(sum, salt.Sum64())

	return int64(sum) & hashMask
}

// mixHash 进一步打散，改善低位分布
func mixHash(h, salt uint64) uint64 {
	const (
		prime1 = 11400714819323198485
		prime2 = 14029467366897019727
		prime3 = 1609587929392839161
	)

	h ^= salt + prime1
	h = bits.RotateLeft64(h, number13)
	h *= prime2
	h = bits.RotateLeft64(h, number29)
	h *= prime3
	h = bits.RotateLeft64(h, number31)

	return h
}
