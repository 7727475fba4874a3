package service

type Services struct {
	VideoService *VideoService
}

func NewServices(fetcher PlaylistFetcher) *Services {
	return &Services{
		VideoService: NewVideoService(fetcher),
	}
}
