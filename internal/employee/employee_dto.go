package employee

type CreateEmployeeRequest struct {
	Nama              string `json:"nama" binding:"required"`
	NIK               string `json:"nik"`
	Jabatan           string `json:"jabatan" binding:"required"`
	Site              string `json:"site" binding:"required"`
	TempatLahir       string `json:"tempat_lahir"`
	TanggalLahir      string `json:"tanggal_lahir"`
	Alamat            string `json:"alamat"`
	KontrakUpahHarian int64  `json:"kontrak_upah_harian" binding:"required,gt=0"`
	DefaultUangMakan  int64  `json:"default_uang_makan" binding:"gte=0"`
	DefaultUangBbm    int64  `json:"default_uang_bbm" binding:"gte=0"`
	BankName          string `json:"bank_name"`
	BankAccount       string `json:"bank_account"`
	NPWP              string `json:"npwp"`
	StartDate         string `json:"start_date"`
}

type UpdateEmployeeRequest struct {
	Nama              string `json:"nama" binding:"required"`
	NIK               string `json:"nik"`
	Jabatan           string `json:"jabatan" binding:"required"`
	Site              string `json:"site" binding:"required"`
	TempatLahir       string `json:"tempat_lahir"`
	TanggalLahir      string `json:"tanggal_lahir"`
	Alamat            string `json:"alamat"`
	KontrakUpahHarian int64  `json:"kontrak_upah_harian" binding:"required,gt=0"`
	DefaultUangMakan  int64  `json:"default_uang_makan" binding:"gte=0"`
	DefaultUangBbm    int64  `json:"default_uang_bbm" binding:"gte=0"`
	BankName          string `json:"bank_name"`
	BankAccount       string `json:"bank_account"`
	NPWP              string `json:"npwp"`
	StartDate         string `json:"start_date"`
	Aktif             *bool  `json:"aktif"`
}

type EmployeeResponse struct {
	ID                string `json:"id"`
	Nama              string `json:"nama"`
	NIK               string `json:"nik,omitempty"`
	Jabatan           string `json:"jabatan"`
	Site              string `json:"site"`
	TempatLahir       string `json:"tempat_lahir,omitempty"`
	TanggalLahir      string `json:"tanggal_lahir,omitempty"`
	Alamat            string `json:"alamat,omitempty"`
	KontrakUpahHarian int64  `json:"kontrak_upah_harian"`
	DefaultUangMakan  int64  `json:"default_uang_makan"`
	DefaultUangBbm    int64  `json:"default_uang_bbm"`
	BankName          string `json:"bank_name,omitempty"`
	BankAccount       string `json:"bank_account,omitempty"`
	NPWP              string `json:"npwp,omitempty"`
	StartDate         string `json:"start_date,omitempty"`
	Aktif             bool   `json:"aktif"`
}
