package chaincode

// NullAddress is the address no account can hold.
const NullAddress = ""

// Farmer represents a farmer registered by a cooperative
type Farmer struct {
	NationalID string `json:"nationalId"`
	Wallet     string `json:"wallet"`
	Registered bool   `json:"registered"`
}

// Harvest represents the metadata of one minted coffee harvest batch
type Harvest struct {
	NationalID     string `json:"nationalId"`
	QuantityKg     uint64 `json:"quantityKg"`
	QualityGrade   string `json:"qualityGrade"`
	HarvestDate    string `json:"harvestDate"`
	FertilizerUsed string `json:"fertilizerUsed"`
	Certifications string `json:"certifications"`
}

// Chaincode event names
const (
	EventOwnershipTransferred = "OwnershipTransferred"
	EventCooperativeAdded     = "CooperativeAdded"
	EventCooperativeRemoved   = "CooperativeRemoved"
	EventFarmerRegistered     = "FarmerRegistered"
	EventHarvestMinted        = "HarvestMinted"
	EventTransfer             = "Transfer"
)

// OwnershipTransferred is the payload of EventOwnershipTransferred
type OwnershipTransferred struct {
	PreviousOwner string `json:"previousOwner"`
	NewOwner      string `json:"newOwner"`
}

// CooperativeChanged is the payload of EventCooperativeAdded and EventCooperativeRemoved
type CooperativeChanged struct {
	Address string `json:"address"`
}

// FarmerRegistered is the payload of EventFarmerRegistered
type FarmerRegistered struct {
	NationalID string `json:"nationalId"`
	Wallet     string `json:"wallet"`
}

// HarvestMinted is the payload of EventHarvestMinted
type HarvestMinted struct {
	TokenID      uint64 `json:"tokenId"`
	NationalID   string `json:"nationalId"`
	QuantityKg   uint64 `json:"quantityKg"`
	QualityGrade string `json:"qualityGrade"`
}

// Transfer is the payload of EventTransfer
type Transfer struct {
	From    string `json:"from"`
	To      string `json:"to"`
	TokenID uint64 `json:"tokenId"`
}
