package registry

import (
	"encoding/hex"

	"supplychain/internal/core/ports"
)

const (
	// compositeIndex is the object type of every composite key the registry builds.
	compositeIndex = "docType~id"

	statusSuffix = "STATUS"
)

// presenceValue marks that an entity exists. Markers are stored under the raw
// composite key, next to the hex-encoded canonical and status records.
var presenceValue = []byte("\x00")

// keys derives ledger keys for an entity.
type keys struct {
	// marker is the raw composite key [docType, id].
	marker string
	// record is the hex encoding of marker, holding the canonical record.
	record string
	// status is the hex encoding of [docType, id, STATUS].
	status string
}

func entityKeys(ledger ports.Ledger, docType, id string) (keys, error) {
	marker, err := ledger.CreateCompositeKey(compositeIndex, []string{docType, id})
	if err != nil {
		return keys{}, err
	}
	status, err := ledger.CreateCompositeKey(compositeIndex, []string{docType, id, statusSuffix})
	if err != nil {
		return keys{}, err
	}
	return keys{
		marker: marker,
		record: encodeKey(marker),
		status: encodeKey(status),
	}, nil
}

func encodeKey(raw string) string {
	return hex.EncodeToString([]byte(raw))
}
