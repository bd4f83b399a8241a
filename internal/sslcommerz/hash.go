package sslcommerz

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
)

// VerifySignature checks the MD5 keyed checksum SSLCommerz attaches to its
// callbacks. The gateway names the signed fields in verify_key (comma
// separated); the digest covers those fields plus store_passwd, which is the
// MD5 of the merchant secret, joined as key=value pairs sorted by key.
//
// The hash scheme is optional on the gateway side: a notification carrying
// neither verify_sign nor verify_key passes unconditionally. That reduces
// assurance exactly as the protocol does, so callers must still confirm the
// transaction against the validation API.
func VerifySignature(n *models.Notification, storePassword string) bool {
	sign := strings.ToLower(n.VerifySign())
	keys := n.VerifyKey()

	if sign == "" && keys == "" {
		return true
	}
	if sign == "" || keys == "" {
		return false
	}

	signed := make(map[string]string)
	for _, key := range strings.Split(keys, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		signed[key] = n.Field(key)
	}
	signed["store_passwd"] = md5Hex(storePassword)

	names := make([]string, 0, len(signed))
	for name := range signed {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+signed[name])
	}
	digest := md5Hex(strings.Join(pairs, "&"))

	return subtle.ConstantTimeCompare([]byte(digest), []byte(sign)) == 1
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
