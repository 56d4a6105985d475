package dto

type BinaryToDecimalRequest struct {
	Binary string `json:"binary"`
}

type BinaryToDecimalResponse struct {
	Binary  string `json:"binary"`
	Decimal int32  `json:"decimal"`
}

type DecimalToBinaryRequest struct {
	Decimal int32 `json:"decimal"`
	Size    uint  `json:"size"`
}

type DecimalToBinaryResponse struct {
	Decimal int32  `json:"decimal"`
	Size    uint   `json:"size"`
	Binary  string `json:"binary"`
}
