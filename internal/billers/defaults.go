package billers

// DefaultRegistry returns a registry with the built-in provider catalog.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Provider{
		Code:        "ikedc",
		Name:        "Ikeja Electric",
		Kind:        KindElectricity,
		DetailLabel: "meter number",
		validate:    digitsOfLength(11, "meter number"),
	})
	r.Register(Provider{
		Code:        "ekedc",
		Name:        "Eko Electricity",
		Kind:        KindElectricity,
		DetailLabel: "meter number",
		validate:    digitsOfLength(11, "meter number"),
	})
	r.Register(Provider{
		Code:        "lagoswater",
		Name:        "Lagos Water",
		Kind:        KindWater,
		DetailLabel: "account number",
		validate:    digitsOfLength(8, "account number"),
	})
	r.Register(Provider{
		Code:        "mtn",
		Name:        "MTN Airtime",
		Kind:        KindAirtime,
		DetailLabel: "phone number",
		validate:    phoneNumber,
	})
	r.Register(Provider{
		Code:        "airtel",
		Name:        "Airtel Airtime",
		Kind:        KindAirtime,
		DetailLabel: "phone number",
		validate:    phoneNumber,
	})
	r.Register(Provider{
		Code:        "dstv",
		Name:        "DStv",
		Kind:        KindCableTV,
		DetailLabel: "smartcard number",
		validate:    digitsOfLength(10, "smartcard number"),
	})
	r.Register(Provider{
		Code:        "gotv",
		Name:        "GOtv",
		Kind:        KindCableTV,
		DetailLabel: "smartcard number",
		validate:    digitsOfLength(10, "smartcard number"),
	})
	r.Register(Provider{
		Code:        "spectranet",
		Name:        "Spectranet",
		Kind:        KindInternet,
		DetailLabel: "account number",
		validate:    digitsOfLength(10, "account number"),
	})
	return r
}
