package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/netx"
)

// ErrEmptyID is returned when an update or delete is asked for without a target.
var ErrEmptyID = errors.New("record id is empty")

// mapError classifies a transport or reply error into the common sentinels,
// keeping the original error in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var se *netx.StatusError
	if errors.As(err, &se) {
		if se.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w", common.ErrNotFound, err)
		}
		return fmt.Errorf("%w: %w", common.ErrRejected, err)
	}
	return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
}
