package buyer

type CreateBuyerRequest struct {
	Nama               string `json:"nama" binding:"required,min=2,max=120"`
	Alamat             string `json:"alamat"`
	Telepon            string `json:"telepon" binding:"omitempty,max=32"`
	Email              string `json:"email" binding:"omitempty,email"`
	HargaPerTonDefault int64  `json:"hargaPerTonDefault" binding:"required,gt=0"`
}

type UpdateBuyerRequest struct {
	Nama               *string `json:"nama" binding:"omitempty,min=2,max=120"`
	Alamat             *string `json:"alamat"`
	Telepon            *string `json:"telepon" binding:"omitempty,max=32"`
	Email              *string `json:"email" binding:"omitempty,email"`
	HargaPerTonDefault *int64  `json:"hargaPerTonDefault" binding:"omitempty,gt=0"`
	Aktif              *bool   `json:"aktif"`
}

type BuyerResponse struct {
	ID                 string `json:"id"`
	Nama               string `json:"nama"`
	Alamat             string `json:"alamat,omitempty"`
	Telepon            string `json:"telepon,omitempty"`
	Email              string `json:"email,omitempty"`
	HargaPerTonDefault int64  `json:"hargaPerTonDefault"`
	Aktif              bool   `json:"aktif"`
}
