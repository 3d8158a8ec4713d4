package timezone

import "time"

const Default = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve o timezone configurado do salão, com fallback seguro
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(Default)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
