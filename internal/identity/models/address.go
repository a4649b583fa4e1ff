package models

import "strings"

// Address is a postal address. City, state and pincode are required.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

func (a Address) Normalized() Address {
	return Address{
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		Pincode: strings.TrimSpace(a.Pincode),
	}
}

func (a Address) Validate() error {
	if err := requireText(a.City, "address city is required"); err != nil {
		return err
	}
	if err := requireText(a.State, "address state is required"); err != nil {
		return err
	}
	if !pincodePattern.MatchString(a.Pincode) {
		return invalid("Please provide a valid 6-digit pincode")
	}
	return nil
}
