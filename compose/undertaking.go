package compose

import "github.com/lvillar/showroomdocs/record"

// Undertaking texts signed on delivery and purchase orders.
const (
	deliveryUndertaking = `I confirm that I have made the full payment for this vehicle and have received all the complete original documents, including the original registration book, original file, and transfer deed. I am satisfied with the vehicle and the documents at the time of purchase.
From today onward, I will be responsible for all matters related to the vehicle, including its use, transfer, taxes, challans, accidents, or any legal issues. I agree to transfer the vehicle into my name within 15 days. After this period, the showroom will not be responsible for any matters related to the vehicle.
If any issue arises regarding past documentation or prior ownership (such as record defects or theft claims), it will be handled directly with the seller and not the showroom. I am signing this undertaking willingly and in full understanding as confirmation of the above. Therefore, I have written this receipt while in full possession of my senses and in the presence of witnesses, so that it may serve as evidence.`

	purchaseUndertaking = `I confirm that I have sold my vehicle to the showroom after receiving the agreed payment and handing over all original documents, including the original registration book, original file, transfer deed, and any related papers. I confirm that all documents provided are genuine and complete to the best of my knowledge.
I declare that I am fully responsible for any past matters related to this vehicle, including but not limited to previous legal issues, accidents, theft claims, unpaid taxes or challans, lost documents, ownership disputes, or any undisclosed defects before the date of sale. If any such issue arises in the future relating to the period before today, I will be solely responsible, and the showroom will bear no liability.
From today onward, the showroom will have full rights over the vehicle as purchaser, including possession, resale, and transfer. I am signing this undertaking willingly and in full understanding as confirmation of the above. Therefore, I have written this receipt while in full possession of my senses and in the presence of witnesses, so that it may serve as evidence.`
)

// Signature lines under the undertaking.
const (
	PurchaserSignature = "Purchaser’s Signature: __________"
	SellerSignature    = "Seller’s Signature: __________"
)

// Undertaking returns the undertaking text and its signature label for a
// document. Delivery wins when a title names both. ok is false when the
// title names neither.
func Undertaking(d *record.Document) (text, signature string, ok bool) {
	switch {
	case d.IsDelivery():
		return deliveryUndertaking, PurchaserSignature, true
	case d.IsPurchase():
		return purchaseUndertaking, SellerSignature, true
	default:
		return "", "", false
	}
}
