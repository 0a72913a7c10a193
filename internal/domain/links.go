package domain

import "fmt"

// EtherscanNFTURL returns the Etherscan page of a token
func EtherscanNFTURL(contractAddress, identifier string) string {
	return fmt.Sprintf("https://etherscan.io/nft/%s/%s", contractAddress, identifier)
}

// OpenSeaAssetURL returns the OpenSea asset page of a token
func OpenSeaAssetURL(contractAddress, identifier string) string {
	return fmt.Sprintf("https://opensea.io/assets/ethereum/%s/%s", contractAddress, identifier)
}

// EtherscanAddressURL returns the Etherscan page of an account
func EtherscanAddressURL(address string) string {
	return fmt.Sprintf("https://etherscan.io/address/%s", address)
}

// EtherscanTxURL returns the Etherscan page of a transaction
func EtherscanTxURL(hash string) string {
	return fmt.Sprintf("https://etherscan.io/tx/%s", hash)
}
