package model

import "strings"

// Address is a value object embedded into the owning table
type Address struct {
	City    string `gorm:"column:city;size:100"`
	Street  string `gorm:"column:street;size:200"`
	Zipcode string `gorm:"column:zipcode;size:10"`
}

func NewAddress(city, street, zipcode string) Address {
	return Address{City: city, Street: street, Zipcode: zipcode}
}

// IsEmpty reports whether no address part was provided
func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.Zipcode) == ""
}
