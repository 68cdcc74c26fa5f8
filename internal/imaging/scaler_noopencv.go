//go:build !opencv

package imaging

func newOpenCVScaler() (Scaler, error) {
	return nil, ErrScalerUnavailable
}
