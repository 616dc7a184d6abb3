package domain

const (
	// DeliveryLocal é o perfil de entrega local com bloco de endereço.
	DeliveryLocal = "entrega"

	// DeliveryOnline é o perfil remoto: o cliente pede links de compra.
	DeliveryOnline = "online"
)

// DeliveryAddress agrupa os campos de endereço do perfil de entrega local.
// Campos em branco são renderizados com o placeholder "(não informado)".
type DeliveryAddress struct {
	Bairro      string
	HouseNumber string
	Reference   string
	TimeOfDay   string
}

// ValidDeliveryProfile informa se o perfil corresponde a uma escolha de
// entrega conhecida.
func ValidDeliveryProfile(profile string) bool {
	return profile == DeliveryLocal || profile == DeliveryOnline
}
