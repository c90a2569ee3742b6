package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PlayDataClient --dir ../usecase --output usecase --outpkg usecasemock --filename play_data_client_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameResolver --dir ../usecase --output usecase --outpkg usecasemock --filename game_resolver_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../domain/gamemap --output domain/gamemap --outpkg gamemapmock --filename store_mock.go
