package bufmng

import "github.com/sirkon/errors"

func errNegativeOffset(offset int) error {
	return errors.New("offset must not be negative").Int("invalid-offset", offset)
}
